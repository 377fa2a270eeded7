package services

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailTaken           = errors.New("email already registered")
	ErrNoSession            = errors.New("no active session")
	ErrConfirmationRequired = errors.New("confirmation required")
)

// ValidationError is a rejected form. Message is ready to show to the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}
	return "validation failed on " + e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

var validate = validator.New()

// checkStruct runs the validate tags of v and turns the first failure into a
// ValidationError using messages, keyed by struct field name.
func checkStruct(v interface{}, messages map[string]string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		field := fieldErrs[0].Field()
		if msg, ok := messages[field]; ok {
			return invalid(field, msg)
		}
		return invalid(field, MsgGenericError)
	}
	return invalid("", MsgGenericError)
}
