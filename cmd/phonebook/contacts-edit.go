package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// contactsEditCmd represents the contacts edit command
var contactsEditCmd = &cobra.Command{
	Use:   "edit <id|name>",
	Short: "Rename a contact or replace its phones",
	Long: `Edit a contact. --name renames it. Any --phone flags replace the whole
phone list; --clear-phones removes every phone.

Example:
  phonebook contacts edit "Иванов Иван" --name "Иванов Иван Иванович"
  phonebook contacts edit 3f0c... -p mobile:+79319222322 -p home:+78120000000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		contact, err := resolveContact(ctx, args[0])
		if err != nil {
			return err
		}

		name := contact.FullName
		if cmd.Flags().Changed("name") {
			name, _ = cmd.Flags().GetString("name")
		}

		phones := contact.Phones
		clearPhones, _ := cmd.Flags().GetBool("clear-phones")
		values, _ := cmd.Flags().GetStringArray("phone")
		switch {
		case clearPhones && len(values) > 0:
			return fmt.Errorf("--clear-phones cannot be combined with --phone")
		case clearPhones:
			phones = nil
		case len(values) > 0:
			if phones, err = parsePhoneFlags(values); err != nil {
				return err
			}
		}

		updated, err := book.Update(ctx, contact.ID, name, phones)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", updated)
		return nil
	},
}

func init() {
	contactsCmd.AddCommand(contactsEditCmd)
	contactsEditCmd.Flags().StringP("name", "n", "", "New full name")
	contactsEditCmd.Flags().StringArrayP("phone", "p", nil, "Replacement phone as NUMBER or TYPE:NUMBER (repeatable)")
	contactsEditCmd.Flags().Bool("clear-phones", false, "Remove every phone from the contact")
}
