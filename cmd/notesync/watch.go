package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/pkruglov/notesync/internal/client"
	"github.com/pkruglov/notesync/models"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep syncing in the background until interrupted",
	Long: `watch runs the sync scheduler in the foreground. Local edits made by
other notesync invocations against the same database are picked up on the
next pass; conflicts are printed as they are detected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *client.App) error {
			ctx, stop := signal.NotifyContext(
				context.Background(),
				syscall.SIGTERM,
				syscall.SIGINT,
				syscall.SIGQUIT,
			)
			defer stop()

			unsubscribe := app.Services.Conflicts.AddListener(func(pending []models.Conflict) {
				if len(pending) == 0 {
					return
				}
				fmt.Printf("%d conflict(s) pending:\n", len(pending))
				printConflicts(pending)
			})
			defer unsubscribe()

			// behave as if the app just came to the foreground
			app.Services.Scheduler.OnFocus()

			fmt.Println("watching; Ctrl-C to stop")
			<-ctx.Done()
			fmt.Println("stopped")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
