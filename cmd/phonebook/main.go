// Command phonebook manages contacts from the terminal.
//
// By default it edits the local snapshot file (STORAGE_FILE, or --data-file).
// With --server it talks to a running phonebook server instead:
//
//	phonebook contacts add "Иванов Иван Иванович" --phone mobile:+79319222322
//	phonebook contacts list --sort name
//	phonebook --server http://localhost:8080 contacts search 2322
//	phonebook export --output backup.json
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"phonebook-service/internal/client"
	"phonebook-service/internal/config"
	"phonebook-service/internal/logging"
	"phonebook-service/internal/storage"
)

var (
	book      phonebook
	closeBook = func() {}
)

var rootCmd = &cobra.Command{
	Use:           "phonebook",
	Short:         "Manage a phonebook of contacts",
	Long:          `Manage a phonebook of contacts stored in a local snapshot file, in PostgreSQL, or behind a phonebook server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return openBook(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().String("server", "", "Phonebook server URL (uses the HTTP API instead of local storage)")
	rootCmd.PersistentFlags().String("data-file", "", "Path of the local snapshot file")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}

func openBook(cmd *cobra.Command) error {
	v := viper.New()
	if err := v.BindPFlag("CLIENT_SERVER_URL", cmd.Flags().Lookup("server")); err != nil {
		return err
	}
	if err := v.BindPFlag("STORAGE_FILE", cmd.Flags().Lookup("data-file")); err != nil {
		return err
	}

	cfg, err := config.LoadFrom(v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, _ := cmd.Flags().GetString("log-level")
	logging.Init(config.LoggerConfig{Level: level, Format: "text"}, cmd.ErrOrStderr())

	if cfg.Client.ServerURL != "" {
		book = client.NewClient(cfg.Client.ServerURL, cfg.Client.Timeout)
		return nil
	}

	cfg.Storage.Watch = false
	repo, release, err := storage.Open(cmd.Context(), *cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	book = newLocalBook(repo)
	closeBook = release
	return nil
}

// execute runs the command tree and releases the book even when the command fails.
func execute() error {
	defer func() {
		closeBook()
		closeBook = func() {}
	}()
	return rootCmd.Execute()
}

func Execute() {
	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
