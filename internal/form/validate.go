package form

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/idilsaglam/contactform/internal/model"
)

// emailPattern accepts local@domain.tld; the final label must be at least two
// characters, so "arria@gmail" is rejected.
var emailPattern = regexp.MustCompile(`^[^\s@]+@([^\s@.]+\.)+[^\s@.]{2,}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("email_tld", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("form: register email_tld: %v", err))
	}
	return v
}

// Errors maps each failing field to its message. A nil or empty Errors means
// the fields are valid.
type Errors map[model.Field]string

// FieldError is one entry of an ordered Errors view.
type FieldError struct {
	Field   model.Field
	Message string
}

// Ordered returns the errors in form display order.
func (e Errors) Ordered() []FieldError {
	out := make([]FieldError, 0, len(e))
	for _, f := range model.Fields {
		if msg, ok := e[f]; ok {
			out = append(out, FieldError{Field: f, Message: msg})
		}
	}
	return out
}

// Validate checks c against the contact form rules.
func Validate(c model.Contact) Errors {
	errs := Errors{}
	err := validate.Struct(c)
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError only happens for non-struct input.
		panic(fmt.Sprintf("form: validate: %v", err))
	}
	for _, fe := range verrs {
		f := model.Field(fe.Field())
		if _, seen := errs[f]; seen {
			continue
		}
		errs[f] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", fe.Field(), fe.Param())
	case "required":
		return fmt.Sprintf("%s is a required field", fe.Field())
	case "email_tld":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
