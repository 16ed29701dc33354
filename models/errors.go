package models

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrDuplicateContact = errors.New("duplicate contact entry is not allowed")
	ErrContactNotFound  = errors.New("contact not found")
)

// Field names a Contact attribute by its serialized name.
type Field string

const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldAddress   Field = "address"
	FieldCity      Field = "city"
	FieldState     Field = "state"
	FieldZip       Field = "zip"
	FieldPhone     Field = "phone"
	FieldEmail     Field = "email"
)

var fieldLabels = map[Field]string{
	FieldFirstName: "first name",
	FieldLastName:  "last name",
	FieldAddress:   "address",
	FieldCity:      "city",
	FieldState:     "state",
	FieldZip:       "zip code",
	FieldPhone:     "phone number",
	FieldEmail:     "email",
}

// ValidationError reports the first contact field that broke its rule.
type ValidationError struct {
	Field Field
	Value string
}

func (e *ValidationError) Error() string {
	label, ok := fieldLabels[e.Field]
	if !ok {
		label = string(e.Field)
	}
	return fmt.Sprintf("invalid %s: %q", label, e.Value)
}
