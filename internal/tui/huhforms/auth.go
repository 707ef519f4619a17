package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"
)

// CreateEmailForm creates a huh form for the sign-in email address.
// Full address validation happens in the auth service; the form only
// rejects obviously empty input.
func CreateEmailForm(email *string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("email").
			Title("Sign in to agora").
			Description("We'll email you a one-time code.").
			Placeholder("you@example.com").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("enter your email address")
				}
				return nil
			}).
			Value(email),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

// CreateCodeForm creates a huh form for the emailed sign-in code
func CreateCodeForm(code *string, email string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("code").
			Title("Enter your code").
			Description("Sent to " + email).
			Placeholder("123456").
			CharLimit(6).
			Validate(func(s string) error {
				if len(strings.TrimSpace(s)) == 0 {
					return errors.New("enter the 6-digit code")
				}
				return nil
			}).
			Value(code),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
