package forms

import (
	"context"
	"errors"

	"github.com/shiptrack/inputguard/pkg/hygiene"
	"github.com/shiptrack/inputguard/pkg/validator"
)

// fieldCheck describes how one form field is checked and what it reports.
type fieldCheck struct {
	name         string
	kind         hygiene.Field
	required     string
	requiredKey  string
	invalid      string
	invalidKey   string
	maliciousKey string
}

// check runs the guard over raw and records a failure in errs with the
// field's own message. It always returns the sanitized value.
func (f fieldCheck) check(ctx context.Context, g *hygiene.Guard, raw string, errs *validator.ValidationErrors) string {
	clean, err := g.Check(ctx, f.name, f.kind, raw)
	if err == nil {
		return clean
	}

	verrs := validator.ExtractValidationErrors(err)
	if len(verrs) == 0 {
		errs.Add(validator.ValidationError{
			Field:          f.name,
			Message:        f.invalid,
			TranslationKey: f.invalidKey,
			Err:            err,
		})
		return clean
	}

	e := verrs[0]
	switch {
	case errors.Is(e.Err, hygiene.ErrMaliciousContent):
		if f.maliciousKey != "" {
			e.TranslationKey = f.maliciousKey
		}
	case errors.Is(e.Err, hygiene.ErrRequired):
		e.Message, e.TranslationKey = f.required, f.requiredKey
	default:
		e.Message, e.TranslationKey = f.invalid, f.invalidKey
	}
	errs.Add(e)
	return clean
}

func result(errs validator.ValidationErrors) error {
	if errs.IsEmpty() {
		return nil
	}
	return errs
}
