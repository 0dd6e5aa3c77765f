package domain

import "errors"

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrSeatAlreadyTaken = errors.New("seat(s) are already taken for this performance")
	ErrDuplicateName    = errors.New("a record with this name already exists")
)

// ValidationError carries field-scoped validation messages. It is distinct
// from ErrSeatAlreadyTaken: a ticket can be well-formed and still conflict.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Fields: map[string]string{field: message},
	}
}

func (e *ValidationError) Error() string {
	for field, message := range e.Fields {
		return field + ": " + message
	}

	return "validation failed"
}
