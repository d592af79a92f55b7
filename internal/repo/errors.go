package repo

import (
	"errors"
	"strings"
)

// ErrDuplicate is returned when a uniqueness constraint rejects a write.
var ErrDuplicate = errors.New("duplicate entry")

// FieldError describes one schema violation.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError is returned when the store rejects a record's shape.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), "; ")
}

// Messages returns one message per violation, in field order.
func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.Message)
	}
	return out
}
