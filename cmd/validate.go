package cmd

import (
	"fmt"

	"github.com/Daskott/addressbook/colors"
	"github.com/Daskott/addressbook/logger"
	"github.com/Daskott/addressbook/models"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(createValidateCmd())
}

func createValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Checks every contact in the config file",
		Long: `Checks every contact in the config file against the contact rules
and reports each invalid entry and each duplicate first and last name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd)
		},
	}
}

func runValidate(cmd *cobra.Command) error {
	logg := logger.NewLogger(verbose)

	config, err := addressBookConfig(logg)
	if err != nil {
		return err
	}

	bookConfig, locale, err := decodeConfig(config)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	book := models.NewAddressBook(locale, logg)
	invalidCount := 0

	for i, details := range bookConfig.Contacts {
		contact, err := models.NewContact(details)
		if err != nil {
			invalidCount++
			fmt.Fprintf(out, "%s contacts[%d]: %v\n", colors.Red("Invalid:"), i, err)
			continue
		}

		if book.IsDuplicate(contact) {
			fmt.Fprintf(out, "%s contacts[%d]: %s %s is listed more than once\n",
				warningLabel(), i, contact.FirstName(), contact.LastName())
			continue
		}
		book.AddContact(contact)
	}

	if invalidCount > 0 {
		return formattedError("%d of %d contact(s) in %s are invalid",
			invalidCount, len(bookConfig.Contacts), config.ConfigFileUsed())
	}

	fmt.Fprintf(out, "%s %d contact(s) loaded\n", colors.Green("OK:"), book.ContactCount())
	return nil
}
