// Package validator adapts go-playground/validator to echo and turns field
// failures into plain-English messages. All failures on a request are
// collected and reported together, not one at a time.
package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Error carries every message produced while validating one request.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New builds the validator with the application's custom rules registered.
func New() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Registration errors only occur for nil funcs or empty tags.
	_ = validate.RegisterValidation("username", validUsername)
	_ = validate.RegisterValidation("strong_password", strongPassword)

	return &RequestValidator{validate: validate}
}

// Validate checks the struct and returns an *Error listing every failure.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, messageFor(fe))
	}

	return &Error{Messages: messages}
}

func validUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

// strongPassword requires at least one uppercase letter, one lowercase
// letter, one digit and one non-alphanumeric character.
func strongPassword(fl validator.FieldLevel) bool {
	var upper, lower, digit, special bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}

	return upper && lower && digit && special
}

// messageFor maps one field failure to its client-facing message.
func messageFor(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
	case "email":
		return "Email must be a valid email address"
	case "username":
		return "Username can only contain letters, numbers, underscores and hyphens"
	case "strong_password":
		return "Password must contain an uppercase letter, a lowercase letter, a digit and a special character"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
