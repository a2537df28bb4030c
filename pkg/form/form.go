package form

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/cadastro/pkg/logger"
	"github.com/dmitrymomot/cadastro/pkg/mask"
	"github.com/dmitrymomot/cadastro/pkg/rules"
	"github.com/dmitrymomot/cadastro/pkg/validator"
)

// SuccessMessage is reported when a submission passes every rule.
const SuccessMessage = "Formulário válido!"

// Form evaluates masks and rules for a fixed set of fields.
type Form struct {
	fields []binding
	index  map[string]int
	now    func() time.Time
	logger *slog.Logger
}

// Result is the outcome of validating one field. Rule and Message are set
// only when Valid is false.
type Result struct {
	Field   string     `json:"field"`
	Valid   bool       `json:"valid"`
	Rule    rules.Name `json:"rule,omitempty"`
	Message string     `json:"message,omitempty"`
}

// Report is the outcome of a submission, with one Result per field in
// binding order.
type Report struct {
	Valid   bool     `json:"valid"`
	Results []Result `json:"results"`
	Message string   `json:"message,omitempty"`
}

// Err returns the failing fields as validator.ValidationErrors, or nil.
func (r Report) Err() error {
	var errs validator.ValidationErrors
	for _, res := range r.Results {
		if !res.Valid {
			errs.Add(validator.ValidationError{
				Field:   res.Field,
				Key:     res.Rule.String(),
				Message: res.Message,
			})
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// New resolves fields into a Form.
func New(fields []Field, opts ...Option) (*Form, error) {
	f := &Form{
		fields: make([]binding, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
		now:    time.Now,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}

	for _, fd := range fields {
		if fd.Name == "" {
			return nil, ErrEmptyFieldName
		}
		if _, ok := f.index[fd.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, fd.Name)
		}

		b := binding{name: fd.Name, rules: make([]rules.Rule, 0, len(fd.Rules))}
		if fd.Mask != "" {
			k, err := mask.ParseKind(fd.Mask)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", fd.Name, err)
			}
			b.mask = k
		}
		for _, name := range fd.Rules {
			r, err := rules.Lookup(rules.Name(name))
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", fd.Name, err)
			}
			b.rules = append(b.rules, r)
		}

		f.index[fd.Name] = len(f.fields)
		f.fields = append(f.fields, b)
	}

	return f, nil
}

// Fields returns the field names in binding order.
func (f *Form) Fields() []string {
	out := make([]string, len(f.fields))
	for i, b := range f.fields {
		out[i] = b.name
	}
	return out
}

// Input masks a keystroke on field. Fields without a mask are returned as
// typed.
func (f *Form) Input(field string, in mask.Input) (mask.Output, error) {
	b, err := f.lookup(field)
	if err != nil {
		return mask.Output{}, err
	}
	if b.mask == "" {
		return mask.Output(in), nil
	}
	out, _ := mask.Format(b.mask, in)
	return out, nil
}

// Blur validates a single field.
func (f *Form) Blur(field, value string) (Result, error) {
	return f.BlurContext(context.Background(), field, value)
}

// BlurContext is Blur with a context for request scoped logging.
func (f *Form) BlurContext(ctx context.Context, field, value string) (Result, error) {
	b, err := f.lookup(field)
	if err != nil {
		return Result{}, err
	}
	return f.evaluate(ctx, b, value, f.now()), nil
}

// Submit validates every field of the form. Values missing from the map are
// treated as empty; values for fields outside the form are rejected.
func (f *Form) Submit(values map[string]string) (Report, error) {
	return f.SubmitContext(context.Background(), values)
}

// SubmitContext is Submit with a context for request scoped logging.
func (f *Form) SubmitContext(ctx context.Context, values map[string]string) (Report, error) {
	for name := range values {
		if _, ok := f.index[name]; !ok {
			return Report{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
	}

	now := f.now()
	report := Report{Valid: true, Results: make([]Result, 0, len(f.fields))}
	for _, b := range f.fields {
		res := f.evaluate(ctx, b, values[b.name], now)
		if !res.Valid {
			report.Valid = false
		}
		report.Results = append(report.Results, res)
	}
	if report.Valid {
		report.Message = SuccessMessage
	}

	f.logger.DebugContext(ctx, "form submitted",
		logger.Component("form"),
		logger.Verdict(report.Valid),
	)
	return report, nil
}

func (f *Form) evaluate(ctx context.Context, b binding, value string, now time.Time) Result {
	for _, r := range b.rules {
		v := r.Evaluate(value, now)
		if !v.Passed {
			f.logger.DebugContext(ctx, "field rejected",
				logger.Field(b.name),
				logger.Rule(v.Rule.String()),
			)
			return Result{Field: b.name, Rule: v.Rule, Message: v.Message}
		}
	}
	return Result{Field: b.name, Valid: true}
}

func (f *Form) lookup(field string) (binding, error) {
	i, ok := f.index[field]
	if !ok {
		return binding{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return f.fields[i], nil
}
