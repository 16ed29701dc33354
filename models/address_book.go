package models

import (
	"sort"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// LocationCounts tallies contacts per city and per state.
type LocationCounts struct {
	City  map[string]int `json:"city" yaml:"city"`
	State map[string]int `json:"state" yaml:"state"`
}

// AddressBook is an ordered collection of contacts held in memory.
// It does no locking of its own; callers sharing one across goroutines
// must serialize access.
type AddressBook struct {
	contacts []*Contact
	collator *collate.Collator
	logg     *zap.SugaredLogger
}

// NewAddressBook returns an empty book that sorts text using the collation
// rules of locale. A nil logg discards log output.
func NewAddressBook(locale language.Tag, logg *zap.SugaredLogger) *AddressBook {
	if logg == nil {
		logg = zap.NewNop().Sugar()
	}

	return &AddressBook{
		contacts: []*Contact{},
		collator: collate.New(locale),
		logg:     logg,
	}
}

// AddContact appends contact without checking for duplicates.
func (book *AddressBook) AddContact(contact *Contact) {
	book.contacts = append(book.contacts, contact)
	book.logg.Debugf("added contact %s %s", contact.FirstName(), contact.LastName())
}

// IsDuplicate reports whether an entry with the same first and last name exists.
func (book *AddressBook) IsDuplicate(contact *Contact) bool {
	for _, c := range book.contacts {
		if c.FirstName() == contact.FirstName() && c.LastName() == contact.LastName() {
			return true
		}
	}
	return false
}

// AddUniqueContact adds contact unless IsDuplicate holds for it.
func (book *AddressBook) AddUniqueContact(contact *Contact) error {
	if book.IsDuplicate(contact) {
		return errors.Wrapf(ErrDuplicateContact, "%s %s", contact.FirstName(), contact.LastName())
	}

	book.AddContact(contact)
	return nil
}

// EditContact merges patch onto the first contact named firstName. Patch keys
// are field names as in ContactDetails; unknown keys are ignored. The merged
// contact is validated as a new one would be and the entry is left untouched
// if that fails.
func (book *AddressBook) EditContact(firstName string, patch map[string]string) error {
	contact := book.findByFirstName(firstName)
	if contact == nil {
		return errors.Wrapf(ErrContactNotFound, "edit %q", firstName)
	}

	details := contact.Details()
	if err := mapstructure.Decode(patch, &details); err != nil {
		return errors.Wrap(err, "decode contact patch")
	}

	updated, err := NewContact(details)
	if err != nil {
		return err
	}

	*contact = *updated
	book.logg.Debugf("edited contact %q: %v", firstName, patch)

	return nil
}

// DeleteContact removes every contact named firstName.
func (book *AddressBook) DeleteContact(firstName string) error {
	initialCount := len(book.contacts)

	kept := book.contacts[:0]
	for _, c := range book.contacts {
		if c.FirstName() != firstName {
			kept = append(kept, c)
		}
	}

	// Drop references left behind the kept entries
	for i := len(kept); i < initialCount; i++ {
		book.contacts[i] = nil
	}
	book.contacts = kept

	if len(book.contacts) == initialCount {
		return errors.Wrapf(ErrContactNotFound, "delete %q", firstName)
	}

	book.logg.Debugf("deleted %d contact(s) named %q", initialCount-len(book.contacts), firstName)
	return nil
}

func (book *AddressBook) ContactCount() int {
	return len(book.contacts)
}

// Contacts returns a copy of every entry in the book's current order.
func (book *AddressBook) Contacts() []Contact {
	return book.filter(func(*Contact) bool { return true })
}

// SearchByCityOrState returns the contacts whose city or state equals location.
func (book *AddressBook) SearchByCityOrState(location string) []Contact {
	return book.filter(func(c *Contact) bool {
		return c.City() == location || c.State() == location
	})
}

// ViewPersonsByCityOrState groups contacts under both their city and their
// state. A contact whose city and state are equal is listed twice under it.
func (book *AddressBook) ViewPersonsByCityOrState() map[string][]Contact {
	result := map[string][]Contact{}
	for _, c := range book.contacts {
		result[c.City()] = append(result[c.City()], *c)
		result[c.State()] = append(result[c.State()], *c)
	}
	return result
}

func (book *AddressBook) CountByCityOrState() LocationCounts {
	counts := LocationCounts{City: map[string]int{}, State: map[string]int{}}
	for _, c := range book.contacts {
		counts.City[c.City()]++
		counts.State[c.State()]++
	}
	return counts
}

// ---------------------------------------------------------------------------------//
// Sorting
// --------------------------------------------------------------------------------//

func (book *AddressBook) SortContactsByName() {
	book.sortByKey(func(c *Contact) string { return c.FirstName() + c.LastName() })
}

func (book *AddressBook) SortByCity() {
	book.sortByKey((*Contact).City)
}

func (book *AddressBook) SortByState() {
	book.sortByKey((*Contact).State)
}

// SortByZip orders by zip as a string, not as a number.
func (book *AddressBook) SortByZip() {
	sort.SliceStable(book.contacts, func(i, j int) bool {
		return book.contacts[i].Zip() < book.contacts[j].Zip()
	})
}

func (book *AddressBook) sortByKey(key func(*Contact) string) {
	sort.SliceStable(book.contacts, func(i, j int) bool {
		return book.collator.CompareString(key(book.contacts[i]), key(book.contacts[j])) < 0
	})
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func (book *AddressBook) findByFirstName(firstName string) *Contact {
	for _, c := range book.contacts {
		if c.FirstName() == firstName {
			return c
		}
	}
	return nil
}

func (book *AddressBook) filter(keep func(*Contact) bool) []Contact {
	result := []Contact{}
	for _, c := range book.contacts {
		if keep(c) {
			result = append(result, *c)
		}
	}
	return result
}
