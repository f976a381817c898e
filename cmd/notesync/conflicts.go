package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkruglov/notesync/internal/client"
	"github.com/pkruglov/notesync/models"
	"github.com/spf13/cobra"
)

var keepSide string

var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "Inspect and resolve sync conflicts",
}

var conflictsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List records waiting for a conflict decision",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *client.App) error {
			pending, err := detectConflicts(context.Background(), app)
			if err != nil {
				return err
			}
			if len(pending) == 0 {
				fmt.Println("no conflicts")
				return nil
			}
			printConflicts(pending)
			return nil
		})
	},
}

var conflictsResolveCmd = &cobra.Command{
	Use:   "resolve <record-id>",
	Short: "Resolve a conflict by keeping one side",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		choice := models.ConflictChoice(keepSide)
		if !choice.Valid() {
			return fmt.Errorf("--keep must be %q or %q", models.ChoiceLocal, models.ChoiceRemote)
		}

		return withApp(func(app *client.App) error {
			ctx := context.Background()

			pending, err := detectConflicts(ctx, app)
			if err != nil {
				return err
			}

			conflict, err := matchConflict(pending, args[0])
			if err != nil {
				return err
			}

			if err := app.Services.Sync.ResolveConflict(ctx, conflict.ID, choice); err != nil {
				return err
			}

			fmt.Printf("kept the %s copy of %s\n", choice, shortID(conflict.Local.ID))
			if choice == models.ChoiceLocal {
				fmt.Println("run `notesync sync` to push the winning copy")
			}
			return nil
		})
	},
}

func init() {
	conflictsResolveCmd.Flags().StringVar(&keepSide, "keep", "", "Which side to keep: local or remote")
	_ = conflictsResolveCmd.MarkFlagRequired("keep")

	conflictsCmd.AddCommand(conflictsListCmd, conflictsResolveCmd)
	rootCmd.AddCommand(conflictsCmd)
}

// detectConflicts repopulates the in-memory conflict registry. Conflict
// entries do not outlive the process that detected them, so a fresh CLI
// invocation re-runs a full-listing pass to rebuild the queue before
// inspecting it.
func detectConflicts(ctx context.Context, app *client.App) ([]models.Conflict, error) {
	if err := resetChangeCursors(ctx, app); err != nil {
		return nil, err
	}
	if err := app.Services.Sync.PerformIncrementalSync(ctx); err != nil {
		return nil, err
	}
	return app.Services.Conflicts.Pending(), nil
}

// matchConflict finds the pending conflict whose record id matches the
// given id or unique prefix.
func matchConflict(pending []models.Conflict, idPrefix string) (models.Conflict, error) {
	var matches []models.Conflict
	for _, conflict := range pending {
		if strings.HasPrefix(conflict.Local.ID, idPrefix) {
			matches = append(matches, conflict)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Conflict{}, fmt.Errorf("no pending conflict matches %q", idPrefix)
	default:
		return models.Conflict{}, fmt.Errorf("%q is ambiguous, %d conflicts match", idPrefix, len(matches))
	}
}
