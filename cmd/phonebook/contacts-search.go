package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// contactsSearchCmd represents the contacts search command
var contactsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search contacts by name or phone number",
	Long: `Search contacts whose name contains the query, ignoring case, or whose
phone number contains it, ignoring spaces.

Example:
  phonebook contacts search иван
  phonebook contacts search "922 23"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contacts, err := book.Search(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		if len(contacts) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "no contacts found")
			return nil
		}
		return printContacts(cmd.OutOrStdout(), contacts)
	},
}

func init() {
	contactsCmd.AddCommand(contactsSearchCmd)
}
