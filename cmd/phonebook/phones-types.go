package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// phonesTypesCmd represents the phones types command
var phonesTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the phone types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		types, err := book.PhoneTypes(cmd.Context())
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CODE\tNAME")
		for _, t := range types {
			fmt.Fprintf(tw, "%s\t%s\n", t.Code, t.DisplayName)
		}
		return tw.Flush()
	},
}

func init() {
	phonesCmd.AddCommand(phonesTypesCmd)
}
