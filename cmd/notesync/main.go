// Package main provides the notesync CLI: local notes and tasks with
// cross-device synchronization through a shared cloud folder.
package main

import (
	"fmt"
	"os"

	"github.com/pkruglov/notesync/internal/client"
	"github.com/pkruglov/notesync/internal/config"
	"github.com/pkruglov/notesync/internal/logger"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var rootCmd = &cobra.Command{
	Use:   "notesync",
	Short: "Notes and tasks that follow you across devices",
	Long: `notesync keeps a local collection of notes and tasks in SQLite and
reconciles it against a shared cloud folder. Conflicting edits made on
different devices at the same version are surfaced for an explicit
keep-local or keep-remote decision; nothing is merged silently.

Examples:
  notesync note add "groceries" --content "milk, eggs"
  notesync task add "call the bank"
  notesync sync
  notesync conflicts list
  notesync conflicts resolve 0192f3a1 --keep local
  notesync watch`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// withApp assembles the client runtime, runs fn, and tears everything down.
// Every subcommand that touches the local store or the network goes through
// it so that flag and environment handling stays in one place.
func withApp(fn func(app *client.App) error) error {
	log := logger.NewClientLogger("notesync")

	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	app, err := client.NewApp(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing app")
		}
	}()

	return fn(app)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		printBuildInfo()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
