// Package validator implements the field checks of the registration form and
// the declarative Rule helpers used to aggregate their failures.
//
// The checks come in two shapes. Predicates (IsPresent, IsName, IsEmail,
// IsPhone, IsCPF, IsAdult) take raw field text and return a boolean; they are
// pure, never panic and accept any string. Rule constructors (Required,
// ValidName, ValidEmail, ValidPhone, ValidCPF, MinAge18) bind a predicate to a
// field name and a ValidationError so several checks can be evaluated at once
// with Apply:
//
//	err := validator.Apply(
//	    validator.Required("nome", name),
//	    validator.ValidCPF("cpf", cpf),
//	    validator.MinAge18("nascimento", birth, time.Now()),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // render verrs.Get(field)
//	    }
//	}
//
// # CPF
//
// IsCPF accepts any formatting (dots, dashes, spaces) and validates the two
// check digits of the eleven-digit number. Numbers made of a single repeated
// digit are rejected even though their check digits add up.
//
// # Age
//
// IsAdult parses a DD/MM/YYYY birth date and compares it with the reference
// time it is given. There is no hidden call to time.Now, so results are
// reproducible in tests. Dates that do not exist on the calendar (31/04,
// 29/02 outside leap years) fail instead of rolling over.
//
// The package keeps no state and is safe for concurrent use.
package validator
