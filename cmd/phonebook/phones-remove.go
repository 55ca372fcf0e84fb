package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"phonebook-service/internal/core/domain"
)

// phonesRemoveCmd represents the phones remove command
var phonesRemoveCmd = &cobra.Command{
	Use:     "remove <id|name> <number>",
	Aliases: []string{"rm"},
	Short:   "Remove a phone number from a contact",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		typeName, _ := cmd.Flags().GetString("type")
		phoneType, err := parseTypeFlag(typeName)
		if err != nil {
			return err
		}

		contact, err := resolveContact(ctx, args[0])
		if err != nil {
			return err
		}

		updated, err := book.RemovePhone(ctx, contact.ID, domain.NewPhoneNumber(args[1], phoneType))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", updated)
		return nil
	},
}

func init() {
	phonesCmd.AddCommand(phonesRemoveCmd)
	phonesRemoveCmd.Flags().StringP("type", "t", "mobile", "Phone type: mobile, home, work or fax")
}
