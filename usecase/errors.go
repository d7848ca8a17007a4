package usecase

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a wire field name to its error messages, the shape a
// 400 body enumerates.
type FieldErrors map[string][]string

type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.Fields))
}

func newFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: FieldErrors{field: {message}}}
}

const (
	msgRequired = "This field is required."
	msgBlank    = "This field may not be blank."
)

func msgMaxLength(limit string) string {
	return fmt.Sprintf("Ensure this field has no more than %s characters.", limit)
}

func msgInvalidPk(id uint) string {
	return fmt.Sprintf("Invalid pk %q - object does not exist.", fmt.Sprint(id))
}

// wrapValidation converts validator.ValidationErrors into per-field
// messages keyed by the JSON tag name.
func wrapValidation(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := FieldErrors{}
	for _, fe := range verrs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = msgRequired
		case "max":
			msg = msgMaxLength(fe.Param())
		case "min":
			msg = fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		case "email":
			msg = "Enter a valid email address."
		default:
			msg = fmt.Sprintf("Invalid value for %q constraint.", fe.Tag())
		}
		fields[fe.Field()] = append(fields[fe.Field()], msg)
	}
	return &ValidationError{Fields: fields}
}
