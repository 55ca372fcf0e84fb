package main

import (
	"github.com/spf13/cobra"
)

// contactsCmd represents the contacts command
var contactsCmd = &cobra.Command{
	Use:     "contacts",
	Aliases: []string{"contact"},
	Short:   "Manage contacts",
	Long:    `List, show, add, edit, delete and search contacts.`,
}

func init() {
	rootCmd.AddCommand(contactsCmd)
}
