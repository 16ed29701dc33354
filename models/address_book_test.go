package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTestContact(t *testing.T, firstName, lastName, city, state, zip string) *Contact {
	t.Helper()

	contact, err := NewContact(ContactDetails{
		FirstName: firstName,
		LastName:  lastName,
		Address:   "Street 123",
		City:      city,
		State:     state,
		Zip:       zip,
		Phone:     "1 9876543210",
		Email:     "someone@example.com",
	})
	require.NoError(t, err)

	return contact
}

// sampleBook holds John Doe, Jane Smith and Emily Clark in that order.
func sampleBook(t *testing.T) *AddressBook {
	t.Helper()

	book := NewAddressBook(language.English, nil)
	book.AddContact(newTestContact(t, "John", "Doe", "New York", "New York", "10001"))
	book.AddContact(newTestContact(t, "Jane", "Smith", "Los Angeles", "California", "90001"))
	book.AddContact(newTestContact(t, "Emily", "Clark", "Chicago", "Illinois", "60601"))

	return book
}

func firstNames(contacts []Contact) []string {
	names := []string{}
	for _, c := range contacts {
		names = append(names, c.FirstName())
	}
	return names
}

func TestAddContact(t *testing.T) {
	book := NewAddressBook(language.English, nil)
	assert.Equal(t, 0, book.ContactCount())

	for i := 1; i <= 3; i++ {
		// Same name every time, AddContact does not check for duplicates
		book.AddContact(newTestContact(t, "John", "Doe", "Boston", "Massachusetts", "02108"))
		assert.Equal(t, i, book.ContactCount())
	}
}

func TestAddUniqueContact(t *testing.T) {
	book := NewAddressBook(language.English, nil)

	first := newTestContact(t, "John", "Doe", "Boston", "Massachusetts", "02108")
	second := newTestContact(t, "John", "Doe", "Chicago", "Illinois", "60601")

	assert.False(t, book.IsDuplicate(first))
	assert.Nil(t, book.AddUniqueContact(first))
	assert.Equal(t, 1, book.ContactCount())

	assert.True(t, book.IsDuplicate(second))
	err := book.AddUniqueContact(second)
	assert.True(t, errors.Is(err, ErrDuplicateContact), "expected ErrDuplicateContact, got %v", err)
	assert.Equal(t, 1, book.ContactCount())
	assert.Equal(t, "Boston", book.Contacts()[0].City())

	// Matching is case sensitive
	other := newTestContact(t, "John", "DOE", "Boston", "Massachusetts", "02108")
	assert.False(t, book.IsDuplicate(other))
	assert.Nil(t, book.AddUniqueContact(other))
	assert.Equal(t, 2, book.ContactCount())
}

func TestEditContact(t *testing.T) {
	t.Run("Should merge valid patch onto first match", func(t *testing.T) {
		book := sampleBook(t)
		book.AddContact(newTestContact(t, "Jane", "Austen", "Steventon", "Hampshire", "123456"))

		err := book.EditContact("Jane", map[string]string{"city": "San Diego", "zip": "92101", "nickname": "JJ"})
		require.NoError(t, err)

		contacts := book.Contacts()
		assert.Equal(t, "San Diego", contacts[1].City())
		assert.Equal(t, "92101", contacts[1].Zip())
		assert.Equal(t, "California", contacts[1].State())
		assert.Equal(t, "Smith", contacts[1].LastName())

		assert.Equal(t, "Steventon", contacts[3].City())
	})

	t.Run("Should reject patch that breaks a field rule", func(t *testing.T) {
		book := sampleBook(t)
		before := book.Contacts()

		err := book.EditContact("John", map[string]string{"address": "Elm Road", "zip": "1"})

		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr), "expected *ValidationError, got %v", err)
		assert.Equal(t, FieldZip, validationErr.Field)
		assert.Equal(t, before, book.Contacts())
	})

	t.Run("Should fail for unknown first name", func(t *testing.T) {
		book := sampleBook(t)

		err := book.EditContact("NoSuchName", map[string]string{"city": "Boston"})
		assert.True(t, errors.Is(err, ErrContactNotFound), "expected ErrContactNotFound, got %v", err)
	})
}

func TestDeleteContact(t *testing.T) {
	book := sampleBook(t)
	book.AddContact(newTestContact(t, "John", "Smith", "Boston", "Massachusetts", "02108"))

	err := book.DeleteContact("NoSuchName")
	assert.True(t, errors.Is(err, ErrContactNotFound), "expected ErrContactNotFound, got %v", err)
	assert.Equal(t, 4, book.ContactCount())

	err = book.DeleteContact("John")
	assert.Nil(t, err)
	assert.Equal(t, []string{"Jane", "Emily"}, firstNames(book.Contacts()))

	err = book.DeleteContact("John")
	assert.True(t, errors.Is(err, ErrContactNotFound))
}

func TestSearchByCityOrState(t *testing.T) {
	book := sampleBook(t)

	found := book.SearchByCityOrState("California")
	require.Len(t, found, 1)
	assert.Equal(t, "Jane", found[0].FirstName())

	found = book.SearchByCityOrState("Chicago")
	assert.Equal(t, []string{"Emily"}, firstNames(found))

	found = book.SearchByCityOrState("Texas")
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestViewPersonsByCityOrState(t *testing.T) {
	book := sampleBook(t)
	book.AddContact(newTestContact(t, "Mary", "Major", "Springfield", "Illinois", "62701"))

	groups := book.ViewPersonsByCityOrState()

	assert.Equal(t, []string{"Jane"}, firstNames(groups["Los Angeles"]))
	assert.Equal(t, []string{"Emily", "Mary"}, firstNames(groups["Illinois"]))
	// city == state puts John under the same key twice
	assert.Equal(t, []string{"John", "John"}, firstNames(groups["New York"]))
	assert.Len(t, groups, 6)
}

func TestCountByCityOrState(t *testing.T) {
	book := sampleBook(t)

	counts := book.CountByCityOrState()

	assert.Equal(t, map[string]int{"New York": 1, "Los Angeles": 1, "Chicago": 1}, counts.City)
	assert.Equal(t, map[string]int{"New York": 1, "California": 1, "Illinois": 1}, counts.State)
}

func TestSortByZip(t *testing.T) {
	cases := []struct {
		description string
		zips        []string
		expected    []string
	}{
		{"already ascending", []string{"10001", "60601", "90001"}, []string{"10001", "60601", "90001"}},
		{"unordered", []string{"90001", "10001", "60601"}, []string{"10001", "60601", "90001"}},
		{"string not numeric order", []string{"99999", "100000"}, []string{"100000", "99999"}},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			book := NewAddressBook(language.English, nil)
			for _, zip := range c.zips {
				book.AddContact(newTestContact(t, "John", "Doe", "Boston", "Massachusetts", zip))
			}

			book.SortByZip()

			zips := []string{}
			for _, contact := range book.Contacts() {
				zips = append(zips, contact.Zip())
			}
			assert.Equal(t, c.expected, zips)
		})
	}
}

func TestSortByCityAndState(t *testing.T) {
	book := sampleBook(t)

	book.SortByCity()
	assert.Equal(t, []string{"Emily", "Jane", "John"}, firstNames(book.Contacts()))

	book.SortByState()
	assert.Equal(t, []string{"Jane", "Emily", "John"}, firstNames(book.Contacts()))
}

func TestSortUsesCollation(t *testing.T) {
	book := NewAddressBook(language.English, nil)
	book.AddContact(newTestContact(t, "Bob", "Builder", "Boston", "Massachusetts", "02108"))
	book.AddContact(newTestContact(t, "Ann", "Arbor", "amsterdam", "Noord Holland", "10123"))

	book.SortByCity()

	assert.Equal(t, []string{"Ann", "Bob"}, firstNames(book.Contacts()))
}

func TestSortContactsByName(t *testing.T) {
	book := sampleBook(t)
	book.AddContact(newTestContact(t, "Jane", "Austen", "Steventon", "Hampshire", "123456"))
	book.AddContact(newTestContact(t, "Emily", "Clark", "Boston", "Massachusetts", "02108"))

	book.SortContactsByName()

	contacts := book.Contacts()
	names := []string{}
	for _, c := range contacts {
		names = append(names, c.FirstName()+" "+c.LastName())
	}
	assert.Equal(t, []string{"Emily Clark", "Emily Clark", "Jane Austen", "Jane Smith", "John Doe"}, names)

	// Stable: equal keys keep insertion order
	assert.Equal(t, "Chicago", contacts[0].City())
	assert.Equal(t, "Boston", contacts[1].City())
}

func TestSortIsInPlaceAndSurvivesEdits(t *testing.T) {
	book := sampleBook(t)
	book.SortByCity()

	require.NoError(t, book.EditContact("Emily", map[string]string{"phone": "44 1234567890"}))

	contacts := book.Contacts()
	assert.Equal(t, []string{"Emily", "Jane", "John"}, firstNames(contacts))
	assert.Equal(t, "44 1234567890", contacts[0].Phone())
}
