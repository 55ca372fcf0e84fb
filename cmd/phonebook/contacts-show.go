package main

import (
	"github.com/spf13/cobra"
)

// contactsShowCmd represents the contacts show command
var contactsShowCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Show a contact",
	Long: `Show a single contact, looked up by ID or by full name.

Example:
  phonebook contacts show "Иванов Иван Иванович"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contact, err := resolveContact(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printContact(cmd.OutOrStdout(), contact)
		return nil
	},
}

func init() {
	contactsCmd.AddCommand(contactsShowCmd)
}
