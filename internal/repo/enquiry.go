// Package repo holds the enquiry entity and the stores that persist it.
package repo

import (
	"context"
	"strconv"
	"time"
	"unicode/utf8"
)

// Enquiry is a contact form submission. ID and CreatedAt are assigned by
// the store on Create.
type Enquiry struct {
	ID        string
	Name      string
	Lastname  string
	Email     string
	Subject   string
	Notes     string
	CreatedAt time.Time
}

// EnquiryStore persists enquiries. Create returns a *ValidationError when
// the record violates the stored schema and ErrDuplicate when a uniqueness
// constraint rejects it.
type EnquiryStore interface {
	Create(ctx context.Context, e *Enquiry) error
	Ping(ctx context.Context) error
}

type fieldRule struct {
	name   string
	value  func(*Enquiry) string
	maxLen int
}

var enquiryRules = []fieldRule{
	{"name", func(e *Enquiry) string { return e.Name }, 100},
	{"lastname", func(e *Enquiry) string { return e.Lastname }, 100},
	{"email", func(e *Enquiry) string { return e.Email }, 254},
	{"subject", func(e *Enquiry) string { return e.Subject }, 200},
	{"notes", func(e *Enquiry) string { return e.Notes }, 5000},
}

// validateSchema checks the stored shape of an enquiry, collecting every
// violation instead of stopping at the first.
func validateSchema(e *Enquiry) error {
	var fields []FieldError
	for _, r := range enquiryRules {
		v := r.value(e)
		switch {
		case v == "":
			fields = append(fields, FieldError{Field: r.name, Message: "Path `" + r.name + "` is required."})
		case utf8.RuneCountInString(v) > r.maxLen:
			fields = append(fields, FieldError{
				Field:   r.name,
				Message: "Path `" + r.name + "` is longer than the maximum allowed length (" + strconv.Itoa(r.maxLen) + ").",
			})
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
