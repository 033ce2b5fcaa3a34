package cli

import (
	"context"
	"fmt"

	"github.com/pulsr-app/pulsr/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAuditCmd(app *App) *cobra.Command {
	var userID string
	var limit int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show recent regeneration activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := app.Audit.RecentEvents(context.Background(), userID, limit)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAuditTrail(userID, events))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of events to show")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
