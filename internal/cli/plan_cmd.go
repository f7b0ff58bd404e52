package cli

import (
	"fmt"

	"github.com/alexanderramin/blueprint/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		in          planInputs
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Run the full estimate, roadmap, reality check and archetype match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive needs a terminal; pass the plan inputs as flags instead")
				}
				features, err := app.Catalog.ListFeatures(cmd.Context(), false)
				if err != nil {
					return fmt.Errorf("loading feature catalog: %w", err)
				}
				wiz := newPlanWizard(&in, features)
				p := tea.NewProgram(wiz,
					tea.WithContext(cmd.Context()),
					tea.WithInput(cmd.InOrStdin()),
					tea.WithOutput(cmd.ErrOrStderr()),
				)
				if _, err := p.Run(); err != nil {
					return fmt.Errorf("running plan wizard: %w", err)
				}
				if wiz.cancelled {
					fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Cancelled."))
					return nil
				}
				wiz.apply()
			}

			resp, err := app.Planner.Plan(cmd.Context(), in.request())
			if err != nil {
				return err
			}
			return render(cmd, resp, func() string { return formatter.FormatPlan(*resp) })
		},
	}
	in.bind(cmd.Flags())
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Collect the plan inputs with a guided form")
	return cmd
}
