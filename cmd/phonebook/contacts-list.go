package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"phonebook-service/internal/core/ports/output"
)

// contactsListCmd represents the contacts list command
var contactsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	Long: `List contacts in insertion order, or sorted by name or creation time.

Example:
  phonebook contacts list
  phonebook contacts list --sort name
  phonebook contacts list --sort created_at --order desc --limit 10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sortBy, _ := cmd.Flags().GetString("sort")
		order, _ := cmd.Flags().GetString("order")
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		switch sortBy {
		case "", ports.SortByName, ports.SortByCreatedAt:
		default:
			return fmt.Errorf("unknown sort key %q (use %s or %s)", sortBy, ports.SortByName, ports.SortByCreatedAt)
		}

		contacts, total, err := book.List(cmd.Context(), ports.ListFilter{
			SortBy: sortBy,
			Order:  order,
			Limit:  limit,
			Offset: offset,
		})
		if err != nil {
			return err
		}

		if err := printContacts(cmd.OutOrStdout(), contacts); err != nil {
			return err
		}
		if len(contacts) < total {
			fmt.Fprintf(cmd.ErrOrStderr(), "showing %d of %d contacts\n", len(contacts), total)
		}
		return nil
	},
}

func init() {
	contactsCmd.AddCommand(contactsListCmd)
	contactsListCmd.Flags().StringP("sort", "s", "", "Sort key: name or created_at")
	contactsListCmd.Flags().StringP("order", "o", "asc", "Sort order: asc or desc")
	contactsListCmd.Flags().IntP("limit", "l", 100, "Maximum number of contacts to show")
	contactsListCmd.Flags().Int("offset", 0, "Number of contacts to skip")
}
