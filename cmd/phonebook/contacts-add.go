package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// contactsAddCmd represents the contacts add command
var contactsAddCmd = &cobra.Command{
	Use:   "add <full name>",
	Short: "Add a contact",
	Long: `Add a contact with zero or more phone numbers.

Phones are given as NUMBER or TYPE:NUMBER, where TYPE is one of
mobile, home, work or fax. A bare number is a mobile number.

Example:
  phonebook contacts add "Иванов Иван Иванович" --phone +79319222322
  phonebook contacts add "Petrov Petr" -p work:+78120000000 -p fax:+78120000001`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, _ := cmd.Flags().GetStringArray("phone")
		phones, err := parsePhoneFlags(values)
		if err != nil {
			return err
		}

		contact, err := book.Create(cmd.Context(), args[0], phones)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", contact)
		fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\n", contact.ID)
		return nil
	},
}

func init() {
	contactsCmd.AddCommand(contactsAddCmd)
	contactsAddCmd.Flags().StringArrayP("phone", "p", nil, "Phone as NUMBER or TYPE:NUMBER (repeatable)")
}
