package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/Daskott/addressbook/colors"
	"github.com/Daskott/addressbook/models"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	sortArg   string
	outputArg string

	sorters = map[string]func(*models.AddressBook){
		"name":  (*models.AddressBook).SortContactsByName,
		"city":  (*models.AddressBook).SortByCity,
		"state": (*models.AddressBook).SortByState,
		"zip":   (*models.AddressBook).SortByZip,
	}
)

func init() {
	rootCmd.AddCommand(
		createListCmd(),
		createSearchCmd(),
		createCountCmd(),
		createGroupCmd(),
	)
}

func createListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lists every contact in the address book",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd)
		},
	}

	cmd.Flags().StringVarP(&sortArg, "sort", "s", "", "sort contacts by one of name, city, state or zip")
	cmd.Flags().StringVarP(&outputArg, "output", "o", "text", "output format, text or yaml")

	return cmd
}

func createSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <city-or-state>",
		Short: "Lists contacts living in a city or state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := loadAddressBook(cmd)
			if err != nil {
				return err
			}

			found := book.SearchByCityOrState(args[0])
			if len(found) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No contacts found in %s\n", args[0])
				return nil
			}

			printContacts(cmd.OutOrStdout(), found)
			return nil
		},
	}
}

func createCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Counts contacts in total and per city and state",
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := loadAddressBook(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			counts := book.CountByCityOrState()

			fmt.Fprintf(out, "Total contacts: %d\n", book.ContactCount())
			printCounts(out, "By city:", counts.City)
			printCounts(out, "By state:", counts.State)
			return nil
		},
	}
}

func createGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "group",
		Short: "Lists contacts grouped under their city and their state",
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := loadAddressBook(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			groups := book.ViewPersonsByCityOrState()
			locations := make([]string, 0, len(groups))
			for location := range groups {
				locations = append(locations, location)
			}
			sort.Strings(locations)

			for _, location := range locations {
				fmt.Fprintln(out, colors.Heading(location+":"))
				for _, contact := range groups[location] {
					fmt.Fprintf(out, "  %s %s\n", contact.FirstName(), contact.LastName())
				}
			}
			return nil
		},
	}
}

func runList(cmd *cobra.Command) error {
	err := validateListFlags()
	if err != nil {
		return err
	}

	book, err := loadAddressBook(cmd)
	if err != nil {
		return err
	}

	if sortArg != "" {
		sorters[sortArg](book)
	}

	if outputArg == "yaml" {
		return printContactsYAML(cmd.OutOrStdout(), book.Contacts())
	}

	printContacts(cmd.OutOrStdout(), book.Contacts())
	return nil
}

func validateListFlags() error {
	if _, ok := sorters[sortArg]; sortArg != "" && !ok {
		return fmt.Errorf("invalid argument \"%v\", --sort should be name, city, state or zip", sortArg)
	}

	if outputArg != "text" && outputArg != "yaml" {
		return fmt.Errorf("invalid argument \"%v\", --output should be text or yaml", outputArg)
	}
	return nil
}

// ---------------------------------------------------------------------------------//
// Output Helpers
// --------------------------------------------------------------------------------//

func printContacts(out io.Writer, contacts []models.Contact) {
	for _, contact := range contacts {
		fmt.Fprintln(out, contact.String())
	}
}

func printContactsYAML(out io.Writer, contacts []models.Contact) error {
	details := make([]models.ContactDetails, 0, len(contacts))
	for _, contact := range contacts {
		details = append(details, contact.Details())
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)

	err := encoder.Encode(map[string]interface{}{"contacts": details})
	if err != nil {
		return err
	}
	return encoder.Close()
}

func printCounts(out io.Writer, title string, counts map[string]int) {
	fmt.Fprintln(out, colors.Heading(title))
	for _, key := range sortedKeys(counts) {
		fmt.Fprintf(out, "  %s: %d\n", key, counts[key])
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
