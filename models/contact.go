package models

import (
	"fmt"

	"github.com/go-playground/validator"
)

// ContactDetails is the plain data form of a Contact. Field order is the
// order the rules are checked in.
type ContactDetails struct {
	FirstName string `json:"firstName" yaml:"firstName" mapstructure:"firstName" validate:"person_name"`
	LastName  string `json:"lastName" yaml:"lastName" mapstructure:"lastName" validate:"person_name"`
	Address   string `json:"address" yaml:"address" mapstructure:"address" validate:"min=4"`
	City      string `json:"city" yaml:"city" mapstructure:"city" validate:"min=4"`
	State     string `json:"state" yaml:"state" mapstructure:"state" validate:"min=4"`
	Zip       string `json:"zip" yaml:"zip" mapstructure:"zip" validate:"zip_code"`
	Phone     string `json:"phone" yaml:"phone" mapstructure:"phone" validate:"phone_number"`
	Email     string `json:"email" yaml:"email" mapstructure:"email" validate:"contact_email"`
}

// Contact is a validated address book entry. The only way to change one
// after construction is AddressBook.EditContact.
type Contact struct {
	details ContactDetails
}

// NewContact validates details and returns the Contact, or a *ValidationError
// for the first field that is invalid.
func NewContact(details ContactDetails) (*Contact, error) {
	if err := validateDetails(details); err != nil {
		return nil, err
	}

	return &Contact{details: details}, nil
}

func (c Contact) FirstName() string { return c.details.FirstName }
func (c Contact) LastName() string  { return c.details.LastName }
func (c Contact) Address() string   { return c.details.Address }
func (c Contact) City() string      { return c.details.City }
func (c Contact) State() string     { return c.details.State }
func (c Contact) Zip() string       { return c.details.Zip }
func (c Contact) Phone() string     { return c.details.Phone }
func (c Contact) Email() string     { return c.details.Email }

// Details returns a copy of the contact's fields.
func (c Contact) Details() ContactDetails {
	return c.details
}

func (c Contact) String() string {
	d := c.details
	return fmt.Sprintf("%s %s, %s, %s, %s %s, %s, %s",
		d.FirstName, d.LastName, d.Address, d.City, d.State, d.Zip, d.Phone, d.Email)
}

func validateDetails(details ContactDetails) error {
	err := validate.Struct(details)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return err
	}

	// Errors come back in struct field order
	first := fieldErrs[0]
	return &ValidationError{
		Field: Field(first.Field()),
		Value: fmt.Sprintf("%v", first.Value()),
	}
}
