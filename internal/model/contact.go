package model

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when a field name is not one of the form's fields.
var ErrUnknownField = errors.New("unknown field")

// Field names a contact form input.
type Field string

const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldEmail     Field = "email"
	FieldMessage   Field = "message"
)

// Fields lists every form field in display order.
var Fields = []Field{FieldFirstName, FieldLastName, FieldEmail, FieldMessage}

// Label is the human-facing input label. Required fields carry a trailing '*'.
func (f Field) Label() string {
	switch f {
	case FieldFirstName:
		return "First Name*"
	case FieldLastName:
		return "Last Name*"
	case FieldEmail:
		return "Email*"
	case FieldMessage:
		return "Message"
	}
	return string(f)
}

// ParseField validates a raw field name.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Contact is the value set collected by the form. The zero value is an
// empty form. Rules are evaluated by the form package.
type Contact struct {
	FirstName string `json:"firstName" yaml:"firstName" validate:"min=5"`
	LastName  string `json:"lastName" yaml:"lastName" validate:"required"`
	Email     string `json:"email" yaml:"email" validate:"email_tld"`
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Get returns the value held for f.
func (c Contact) Get(f Field) (string, error) {
	switch f {
	case FieldFirstName:
		return c.FirstName, nil
	case FieldLastName:
		return c.LastName, nil
	case FieldEmail:
		return c.Email, nil
	case FieldMessage:
		return c.Message, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, f)
}

// Set stores v for f.
func (c *Contact) Set(f Field, v string) error {
	switch f {
	case FieldFirstName:
		c.FirstName = v
	case FieldLastName:
		c.LastName = v
	case FieldEmail:
		c.Email = v
	case FieldMessage:
		c.Message = v
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return nil
}
