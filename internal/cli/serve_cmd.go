package cli

import (
	"fmt"

	"github.com/pulsr-app/pulsr/internal/api"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the personalization HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			router := api.NewRouter(&api.Handler{
				Personalization: app.Personalization,
				Audit:           app.Audit,
			})

			fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", addr)
			return router.Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")

	return cmd
}
