package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkruglov/notesync/internal/client"
	"github.com/pkruglov/notesync/internal/store"
	"github.com/pkruglov/notesync/models"
	"github.com/spf13/cobra"
)

var syncFull bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one reconciliation pass against the cloud folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *client.App) error {
			ctx := context.Background()

			if syncFull {
				if err := resetChangeCursors(ctx, app); err != nil {
					return err
				}
			}

			if err := app.Services.Sync.PerformIncrementalSync(ctx); err != nil {
				return err
			}

			pending := app.Services.Conflicts.Pending()
			if len(pending) == 0 {
				fmt.Println("in sync")
				return nil
			}

			fmt.Printf("%d conflict(s) need a decision:\n", len(pending))
			printConflicts(pending)
			fmt.Println("\nresolve with: notesync conflicts resolve <id> --keep local|remote")
			return nil
		})
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncFull, "full", false, "Ignore the stored change cursors and list the whole folder")
	rootCmd.AddCommand(syncCmd)
}

// resetChangeCursors clears the per-kind listing cursors so the next pass
// sees the complete remote folder. Used to re-detect conflicts for records
// that are flagged locally but whose registry entries died with an earlier
// process.
func resetChangeCursors(ctx context.Context, app *client.App) error {
	for _, kind := range models.Kinds() {
		meta, err := app.Storages.Meta.LoadMeta(ctx, kind)
		if err != nil {
			if errors.Is(err, store.ErrMetaNotFound) {
				continue
			}
			return err
		}
		meta.ChangeToken = ""
		if err := app.Storages.Meta.SaveMeta(ctx, meta); err != nil {
			return err
		}
	}
	return nil
}

func printConflicts(pending []models.Conflict) {
	for _, conflict := range pending {
		fmt.Printf("  %s  %-4s local v%d %q  vs  remote v%d %q\n",
			shortID(conflict.Local.ID),
			conflict.Kind,
			conflict.Local.SyncVersion, conflictLabel(conflict.Local),
			conflict.Remote.SyncVersion, conflictLabel(conflict.Remote),
		)
	}
}

func conflictLabel(record models.Record) string {
	if record.Payload.Title != "" {
		return record.Payload.Title
	}
	return record.Payload.Content
}
