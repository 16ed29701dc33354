/*
Copyright © 2021 Edmond Cotterell

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Daskott/addressbook/colors"
	devConfig "github.com/Daskott/addressbook/dev/config"
	"github.com/Daskott/addressbook/logger"
	"github.com/Daskott/addressbook/models"
	"github.com/Daskott/addressbook/shared"
	"github.com/Daskott/addressbook/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const (
	configFolderName = ".addressbook"
	configName       = "config"
	defaultLocale    = "en"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = createRootCmd()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func createRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addressbook",
		Short: "addressbook keeps a validated list of your contacts",
		Long: `addressbook loads the contacts listed in your config file into an address book,
checks every entry, and lets you list, search, group, count and sort them.`,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.addressbook/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	return cmd
}

// ---------------------------------------------------------------------------------//
// Config Helpers
// --------------------------------------------------------------------------------//

// addressBookConfig reads in the config file & ENV variables and returns a single
// '*viper.Viper' config object. The default config file is created on first use.
func addressBookConfig(logg *zap.SugaredLogger) (*viper.Viper, error) {
	config := viper.New()
	config.SetDefault("settings.locale", defaultLocale)

	if cfgFile != "" {
		// Use config file from the flag.
		config.SetConfigFile(cfgFile)
	} else {
		configDir, err := defaultConfigDir()
		if err != nil {
			return nil, err
		}

		configFilePath := filepath.Join(configDir, configName+".yaml")
		err = utils.WriteFileIfNotExist(configFilePath, []byte(devConfig.DEFAULT_ADDRESSBOOK_YML))
		if err != nil {
			return nil, errors.Wrap(err, "create default config")
		}

		config.AddConfigPath(configDir)
		config.SetConfigType("yaml")
		config.SetConfigName(configName)
	}

	// e.g. ADDRESSBOOK_SETTINGS_LOCALE overrides settings.locale
	config.SetEnvPrefix("ADDRESSBOOK")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	if err := config.ReadInConfig(); err != nil {
		return nil, formattedError("unable to read config: %v", err)
	}
	logg.Debugf("Using config file: %s", config.ConfigFileUsed())

	return config, nil
}

// defaultConfigDir returns '.addressbook' in the home directory, creating it if needed.
func defaultConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(homeDir, configFolderName)
	if err := utils.CreateDirIfNotExist(configDir); err != nil {
		return "", err
	}

	return configDir, nil
}

// decodeConfig unmarshals and validates the config without building contacts.
func decodeConfig(config *viper.Viper) (*shared.AddressBookConfig, language.Tag, error) {
	bookConfig := shared.AddressBookConfig{}
	if err := config.Unmarshal(&bookConfig); err != nil {
		return nil, language.Und, formattedError("unable to decode config %s: %v", config.ConfigFileUsed(), err)
	}

	if err := models.Validator().Struct(bookConfig); err != nil {
		return nil, language.Und, formattedError("invalid config %s: %v", config.ConfigFileUsed(), err)
	}

	locale, err := language.Parse(bookConfig.Settings.Locale)
	if err != nil {
		return nil, language.Und, formattedError("invalid 'settings.locale' %q: %v", bookConfig.Settings.Locale, err)
	}

	return &bookConfig, locale, nil
}

// loadAddressBook builds an address book from the contacts in the config.
// Invalid contacts fail the load; duplicates are skipped with a warning.
func loadAddressBook(cmd *cobra.Command) (*models.AddressBook, error) {
	logg := logger.NewLogger(verbose)

	config, err := addressBookConfig(logg)
	if err != nil {
		return nil, err
	}

	bookConfig, locale, err := decodeConfig(config)
	if err != nil {
		return nil, err
	}

	book := models.NewAddressBook(locale, logg)
	for i, details := range bookConfig.Contacts {
		contact, err := models.NewContact(details)
		if err != nil {
			return nil, errors.Wrapf(err, "contacts[%d]", i)
		}

		if err := book.AddUniqueContact(contact); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s contacts[%d]: %v, skipping\n", warningLabel(), i, err)
		}
	}

	return book, nil
}

func warningLabel() string {
	return colors.Yellow("Warning:")
}

func formattedError(format string, a ...interface{}) error {
	return fmt.Errorf(colors.Red(format), a...)
}
