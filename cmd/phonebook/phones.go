package main

import (
	"github.com/spf13/cobra"
)

// phonesCmd represents the phones command
var phonesCmd = &cobra.Command{
	Use:   "phones",
	Short: "Manage the phone numbers of a contact",
}

func init() {
	rootCmd.AddCommand(phonesCmd)
}
