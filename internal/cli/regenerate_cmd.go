package cli

import (
	"context"
	"fmt"

	"github.com/pulsr-app/pulsr/internal/cli/formatter"
	"github.com/pulsr-app/pulsr/internal/contract"
	"github.com/spf13/cobra"
)

func newRegenerateCmd(app *App) *cobra.Command {
	var userID string
	var force bool

	cmd := &cobra.Command{
		Use:   "regenerate",
		Short: "Regenerate content pillars from the stored questionnaire answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Personalization.Regenerate(context.Background(), contract.RegenerateRequest{
				UserID: userID,
				Force:  force,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRegenerateResult(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().BoolVar(&force, "force", false, "Regenerate even when answers are unchanged")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
