// Package form binds fields of a form to masks and ordered rule lists and
// evaluates them the way the registration page does: masking on every
// keystroke, single-field validation on blur, and all fields on submit.
//
// A Form is built from a list of Field bindings. Every rule and mask name is
// resolved up front, so a binding that refers to an unknown rule fails in New
// rather than silently passing later.
//
//	f, err := form.New(form.Registration(), form.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//
//	out, _ := f.Input("telefone", mask.Input{Value: "119", Caret: 3})
//	// out.Value == "(11) 9", out.Caret == 6
//
//	res, _ := f.Blur("cpf", "111.111.111-11")
//	// res.Valid == false, res.Rule == rules.CPF, res.Message == "CPF inválido."
//
//	report, _ := f.Submit(values)
//	if err := report.Err(); err != nil {
//	    // validator.ValidationErrors, one entry per failing field
//	}
//
// Rules of a field run in order and evaluation stops at the first failure,
// so a field shows at most one message. The clock used by date rules defaults
// to time.Now and can be replaced with WithClock.
//
// A Form is immutable after New and safe for concurrent use.
package form
