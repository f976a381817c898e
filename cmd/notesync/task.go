package main

import (
	"context"
	"fmt"

	"github.com/pkruglov/notesync/internal/client"
	"github.com/pkruglov/notesync/models"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Create a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *client.App) error {
			ctx := context.Background()

			record, err := app.Services.Versioner.Create(models.KindTask, models.Payload{
				Content: args[0],
			})
			if err != nil {
				return err
			}
			if err := app.Storages.Records.SaveOne(ctx, record); err != nil {
				return err
			}

			app.Services.Events.PublishDataMutated(models.KindTask)
			fmt.Printf("created task %s\n", shortID(record.ID))
			return nil
		})
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *client.App) error {
			ctx := context.Background()

			record, err := findRecord(ctx, app, models.KindTask, args[0])
			if err != nil {
				return err
			}

			done := true
			app.Services.Versioner.BumpOnEdit(&record, models.RecordUpdate{Done: &done})
			if err := app.Storages.Records.SaveOne(ctx, record); err != nil {
				return err
			}

			app.Services.Events.PublishDataMutated(models.KindTask)
			fmt.Printf("completed task %s (now v%d)\n", shortID(record.ID), record.SyncVersion)
			return nil
		})
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *client.App) error {
			records, err := app.Storages.Records.LoadAll(context.Background(), models.KindTask)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("no tasks")
				return nil
			}
			for _, record := range records {
				marker := "[ ]"
				if record.Payload.Done {
					marker = "[x]"
				}
				fmt.Printf("%s %s  v%-3d %-8s  %s\n", marker, shortID(record.ID), record.SyncVersion, record.SyncStatus, record.Payload.Content)
			}
			return nil
		})
	},
}

func init() {
	taskCmd.AddCommand(taskAddCmd, taskDoneCmd, taskListCmd)
	rootCmd.AddCommand(taskCmd)
}
