package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"phonebook-service/internal/core/domain"
)

// phonesAddCmd represents the phones add command
var phonesAddCmd = &cobra.Command{
	Use:   "add <id|name> <number>",
	Short: "Add a phone number to a contact",
	Long: `Add a phone number to a contact. The same number with the same type
cannot be added twice.

Example:
  phonebook phones add "Иванов Иван Иванович" +78120000000 --type work`,
	Args: cobra.ExactArgs(2),
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

		updated, err := book.AddPhone(ctx, contact.ID, domain.NewPhoneNumber(args[1], phoneType))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", updated)
		return nil
	},
}

func init() {
	phonesCmd.AddCommand(phonesAddCmd)
	phonesAddCmd.Flags().StringP("type", "t", "mobile", "Phone type: mobile, home, work or fax")
}
