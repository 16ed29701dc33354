package config

// DEFAULT_ADDRESSBOOK_YML is written to the config path on first run
const DEFAULT_ADDRESSBOOK_YML = `settings:
  locale: "en"

# Add your contacts here. Each one is validated when the book is loaded.
# e.g.
# contacts:
#   - firstName: Jane
#     lastName: Smith
#     address: Avenue 456
#     city: Los Angeles
#     state: California
#     zip: "90001"
#     phone: "1 9876543211"
#     email: jane.smith@example.com
#
contacts:
`
