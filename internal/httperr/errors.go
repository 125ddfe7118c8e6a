package httperr

import "errors"

// ValidationError is user-correctable input trouble (400).
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func ErrValidation(message string) error {
	return ValidationError{Message: message}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// NotFoundError marks a referenced entity that does not exist (404).
type NotFoundError struct {
	Message string
}

func (e NotFoundError) Error() string {
	return e.Message
}

func ErrNotFound(message string) error {
	return NotFoundError{Message: message}
}

func IsNotFound(err error) bool {
	var ne NotFoundError
	return errors.As(err, &ne)
}
