package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// contactsDeleteCmd represents the contacts delete command
var contactsDeleteCmd = &cobra.Command{
	Use:     "delete <id|name>",
	Aliases: []string{"rm"},
	Short:   "Delete a contact",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		contact, err := resolveContact(ctx, args[0])
		if err != nil {
			return err
		}
		if err := book.Delete(ctx, contact.ID); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", contact.FullName)
		return nil
	},
}

func init() {
	contactsCmd.AddCommand(contactsDeleteCmd)
}
