package cli

import (
	"context"
	"fmt"

	"github.com/pulsr-app/pulsr/internal/cli/formatter"
	"github.com/pulsr-app/pulsr/internal/contract"
	"github.com/pulsr-app/pulsr/internal/personality"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the stored content profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.GetProfile(context.Background(), userID)
			if err != nil {
				return err
			}

			// Classification is deterministic, so recomputing the label
			// from the stored answers always matches what was generated.
			analysis := personality.Classify(p.Totals(), personality.Context{
				BusinessModel: p.BusinessModel,
				Audience:      p.Audience,
				TechComfort:   p.TechComfort,
				StructureFlex: p.StructureFlex,
				SoloTeam:      p.SoloTeam,
			})

			view := contract.ProfileView{
				UserID:         p.UserID,
				Label:          analysis.Label,
				Pillars:        p.Pillars,
				Strategy:       p.Strategy,
				PersonaSummary: p.PersonaSummary,
				GeneratedAt:    p.GeneratedAt,
				Version:        p.Version,
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatProfile(&view))
			if p.RegenRequired {
				fmt.Fprintln(out, formatter.StyleYellow.Render("Answers changed since the last run. Run `pulsr regenerate` to refresh."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
