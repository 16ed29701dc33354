package shared

import "github.com/Daskott/addressbook/models"

// AddressBookConfig is the shape of the addressbook config file
type AddressBookConfig struct {
	Settings SettingsConfig `mapstructure:"settings" validate:"required"`

	// Field rules are applied when each entry becomes a models.Contact
	Contacts []models.ContactDetails `mapstructure:"contacts"`
}

type SettingsConfig struct {
	// Locale is a BCP 47 tag used to collate names, cities and states
	Locale string `mapstructure:"locale" validate:"required"`
}
