package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkruglov/notesync/internal/client"
	"github.com/pkruglov/notesync/models"
	"github.com/spf13/cobra"
)

var noteContent string

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *client.App) error {
			ctx := context.Background()

			record, err := app.Services.Versioner.Create(models.KindNote, models.Payload{
				Title:   args[0],
				Content: noteContent,
			})
			if err != nil {
				return err
			}
			if err := app.Storages.Records.SaveOne(ctx, record); err != nil {
				return err
			}

			app.Services.Events.PublishDataMutated(models.KindNote)
			fmt.Printf("created note %s\n", shortID(record.ID))
			return nil
		})
	},
}

var noteEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a note's title or content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *client.App) error {
			ctx := context.Background()

			record, err := findRecord(ctx, app, models.KindNote, args[0])
			if err != nil {
				return err
			}

			var updates models.RecordUpdate
			if cmd.Flags().Changed("title") {
				title, _ := cmd.Flags().GetString("title")
				updates.Title = &title
			}
			if cmd.Flags().Changed("content") {
				updates.Content = &noteContent
			}

			app.Services.Versioner.BumpOnEdit(&record, updates)
			if err := app.Storages.Records.SaveOne(ctx, record); err != nil {
				return err
			}

			app.Services.Events.PublishDataMutated(models.KindNote)
			fmt.Printf("updated note %s (now v%d)\n", shortID(record.ID), record.SyncVersion)
			return nil
		})
	},
}

var noteRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a note from this device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *client.App) error {
			ctx := context.Background()

			record, err := findRecord(ctx, app, models.KindNote, args[0])
			if err != nil {
				return err
			}
			if err := app.Storages.Records.DeleteOne(ctx, record.ID); err != nil {
				return err
			}

			fmt.Printf("deleted note %s locally\n", shortID(record.ID))
			return nil
		})
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *client.App) error {
			records, err := app.Storages.Records.LoadAll(context.Background(), models.KindNote)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("no notes")
				return nil
			}
			for _, record := range records {
				fmt.Printf("%s  v%-3d %-8s  %s\n", shortID(record.ID), record.SyncVersion, record.SyncStatus, record.Payload.Title)
			}
			return nil
		})
	},
}

func init() {
	noteAddCmd.Flags().StringVarP(&noteContent, "content", "c", "", "Note body")
	noteEditCmd.Flags().String("title", "", "New title")
	noteEditCmd.Flags().StringVarP(&noteContent, "content", "c", "", "New body")

	noteCmd.AddCommand(noteAddCmd, noteEditCmd, noteListCmd, noteRemoveCmd)
	rootCmd.AddCommand(noteCmd)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// findRecord resolves an id or unique id prefix to a stored record.
func findRecord(ctx context.Context, app *client.App, kind models.RecordKind, idPrefix string) (models.Record, error) {
	records, err := app.Storages.Records.LoadAll(ctx, kind)
	if err != nil {
		return models.Record{}, err
	}

	var matches []models.Record
	for _, record := range records {
		if strings.HasPrefix(record.ID, idPrefix) {
			matches = append(matches, record)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Record{}, fmt.Errorf("no %s matches %q", kind, idPrefix)
	default:
		return models.Record{}, fmt.Errorf("%q is ambiguous, %d records match", idPrefix, len(matches))
	}
}
