package main

import (
	"context"
	"fmt"

	"github.com/pkruglov/notesync/internal/adapter"
	"github.com/pkruglov/notesync/internal/client"
	"github.com/spf13/cobra"
)

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Show this installation's sync identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *client.App) error {
			ctx := context.Background()

			deviceID, err := app.Services.Device.DeviceID(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("device id: %s\n", deviceID)

			token, err := app.Tokens.Token(ctx)
			if err != nil {
				return err
			}
			if token == "" {
				fmt.Println("account:   none (sync disabled until a token is configured)")
				return nil
			}

			account, err := adapter.ParseSubject(token)
			if err != nil {
				return fmt.Errorf("configured token is not a valid JWT: %w", err)
			}
			fmt.Printf("account:   %s\n", account)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(deviceCmd)
}
