package cli

import (
	"time"

	"github.com/alexanderramin/blueprint/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Planner service.PlanService
	Catalog service.CatalogService

	// IsInteractive reports whether stdin is a terminal. The plan wizard
	// refuses to start when it returns false or is nil.
	IsInteractive func() bool
	// Now is the clock for relative timestamps; time.Now when nil.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "blueprint" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "blueprint",
		Short:         "Estimate, phase and reality-check software project plans",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool(jsonFlag, false, "Emit JSON instead of formatted text")

	root.AddCommand(
		newEstimateCmd(app),
		newPhasesCmd(app),
		newGapsCmd(app),
		newMatchCmd(app),
		newPlanCmd(app),
		newKBCmd(app),
	)

	return root
}
