package models

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator"
)

var (
	namePattern  = regexp.MustCompile(`^[A-Z][a-zA-Z]{2,}$`)
	zipPattern   = regexp.MustCompile(`^[0-9]{5,6}$`)
	phonePattern = regexp.MustCompile(`^[0-9]{1,3} [0-9]{10}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := RegisterValidators(validate); err != nil {
		panic(err)
	}
}

// RegisterValidators adds the contact field rules to validate, and reports
// field errors by their json name instead of the Go field name.
func RegisterValidators(validate *validator.Validate) error {
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]*regexp.Regexp{
		"person_name":   namePattern,
		"zip_code":      zipPattern,
		"phone_number":  phonePattern,
		"contact_email": emailPattern,
	}

	for tag, pattern := range rules {
		pattern := pattern
		err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return pattern.MatchString(fl.Field().String())
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// Validator returns the validator carrying the contact rules, so other
// packages can check their own structs against the same tags.
func Validator() *validator.Validate {
	return validate
}
