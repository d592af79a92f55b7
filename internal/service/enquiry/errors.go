package enquiry

import "errors"

var (
	ErrFieldsRequired = errors.New("all fields are required")
	ErrInvalidEmail   = errors.New("invalid email address")
)
