package mask

import "fmt"

// Kind names a mask. Values match the names used in field bindings.
type Kind string

const (
	KindPhone Kind = "telefone"
	KindCPF   Kind = "cpf"
	KindDate  Kind = "data"
)

// Kinds lists every supported mask.
func Kinds() []Kind {
	return []Kind{KindPhone, KindCPF, KindDate}
}

// ParseKind resolves a mask name.
func ParseKind(name string) (Kind, error) {
	switch k := Kind(name); k {
	case KindPhone, KindCPF, KindDate:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// MaxDigits returns how many digits a kind keeps, or 0 for an unknown kind.
func MaxDigits(k Kind) int {
	switch k {
	case KindPhone, KindCPF:
		return 11
	case KindDate:
		return 8
	}
	return 0
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}
