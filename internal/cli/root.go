package cli

import (
	"github.com/pulsr-app/pulsr/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Personalization service.PersonalizationService
	Profiles        service.ProfileService
	Audit           service.AuditService

	// IsInteractive reports whether stdin is attached to a terminal.
	// Interactive-only commands refuse to run when it returns false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "pulsr" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pulsr",
		Short: "Personality-driven content planner",
	}

	root.AddCommand(
		newOnboardCmd(app),
		newProfileCmd(app),
		newRegenerateCmd(app),
		newAuditCmd(app),
		newServeCmd(app),
	)

	return root
}
