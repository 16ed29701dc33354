package cmd

import (
	"fmt"

	"github.com/Daskott/addressbook/colors"
	"github.com/Daskott/addressbook/logger"
	"github.com/Daskott/addressbook/models"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var sampleContacts = []models.ContactDetails{
	{
		FirstName: "John", LastName: "Doe", Address: "Street 123", City: "New York", State: "New York",
		Zip: "10001", Phone: "1 9876543210", Email: "john.doe@example.com",
	},
	{
		FirstName: "Jane", LastName: "Smith", Address: "Avenue 456", City: "Los Angeles", State: "California",
		Zip: "90001", Phone: "1 9876543211", Email: "jane.smith@example.com",
	},
	{
		FirstName: "Emily", LastName: "Clark", Address: "Boulevard 789", City: "Chicago", State: "Illinois",
		Zip: "60601", Phone: "1 9876543212", Email: "emily.clark@example.com",
	},
}

func init() {
	rootCmd.AddCommand(createDemoCmd())
}

func createDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Prints a few sample contacts before and after each sort",
		Long: `Builds an address book of sample contacts, ignoring the config file,
and prints it unsorted, then sorted by city, by state and by zip.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd)
		},
	}
}

func runDemo(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	book := models.NewAddressBook(language.English, logger.NewLogger(verbose))

	for _, details := range sampleContacts {
		contact, err := models.NewContact(details)
		if err != nil {
			return err
		}
		book.AddContact(contact)
	}

	steps := []struct {
		title string
		sort  func()
	}{
		{"Before Sorting:", func() {}},
		{"Sorted by City:", book.SortByCity},
		{"Sorted by State:", book.SortByState},
		{"Sorted by Zip:", book.SortByZip},
	}

	for i, step := range steps {
		if i > 0 {
			fmt.Fprintln(out)
		}

		step.sort()
		fmt.Fprintln(out, colors.Heading(step.title))
		printContacts(out, book.Contacts())
	}

	return nil
}
