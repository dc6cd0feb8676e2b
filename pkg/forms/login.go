package forms

import (
	"context"
	"fmt"

	"github.com/shiptrack/inputguard/pkg/hygiene"
	"github.com/shiptrack/inputguard/pkg/sanitizer"
	"github.com/shiptrack/inputguard/pkg/validator"
)

// MinPasswordLen is the minimum password length in runes.
const MinPasswordLen = 6

// KeyLoginAlert is the catalog key for the login form's summary notice.
const KeyLoginAlert = "login.alert"

// Credentials is the login form.
type Credentials struct {
	Email    string
	Password string
}

var emailField = fieldCheck{
	name:         "email",
	kind:         hygiene.FieldEmail,
	required:     "Email is required",
	requiredKey:  "login.email.required",
	invalid:      "Please enter a valid email address",
	invalidKey:   "login.email.invalid",
	maliciousKey: "login.email.malicious",
}

// ValidateLogin checks the e-mail address and password. The returned
// e-mail is sanitized and lower-cased; the password is never sanitized
// and is returned as given.
func ValidateLogin(ctx context.Context, g *hygiene.Guard, c Credentials) (Credentials, error) {
	var errs validator.ValidationErrors

	email := emailField.check(ctx, g, c.Email, &errs)

	passwordErr := validator.ApplyFirst(
		validator.WithMessage(validator.RequiredString("password", c.Password),
			"Password is required", "login.password.required"),
		validator.WithMessage(validator.MinLenString("password", c.Password, MinPasswordLen),
			fmt.Sprintf("Password must be at least %d characters", MinPasswordLen), "login.password.too_short"),
	)

	out := Credentials{
		Email:    sanitizer.TrimToLower(email),
		Password: c.Password,
	}
	return out, validator.Merge(result(errs), passwordErr)
}
