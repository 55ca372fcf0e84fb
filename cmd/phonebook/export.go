package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"phonebook-service/internal/adapters/secondary/filestore"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every contact as a snapshot",
	Long: `Export every contact in the snapshot format used by the file storage.

Without --output the snapshot is written to stdout. With --output the file
is replaced atomically, so an export from a server can be used directly
as a --data-file.

Example:
  phonebook export > phonebook.json
  phonebook --server http://localhost:8080 export --output backup/phonebook.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		contacts, err := book.All(cmd.Context())
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			return filestore.EncodeSnapshot(cmd.OutOrStdout(), contacts)
		}

		if err := filestore.WriteSnapshot(output, contacts); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d contacts to %s\n", len(contacts), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "", "Write the snapshot to this file instead of stdout")
}
