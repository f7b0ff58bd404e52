package cli

import (
	"github.com/alexanderramin/blueprint/internal/app"
	"github.com/alexanderramin/blueprint/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newEstimateCmd(app *App) *cobra.Command {
	var in planInputs

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate cost, timeline and staffing for a feature set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := app.Planner.Estimate(cmd.Context(), in.request())
			if err != nil {
				return err
			}
			return render(cmd, est, func() string { return formatter.FormatEstimate(*est) })
		},
	}
	in.bind(cmd.Flags())
	return cmd
}

func newPhasesCmd(app *App) *cobra.Command {
	var in planInputs

	cmd := &cobra.Command{
		Use:   "phases",
		Short: "Split features into MVP, Phase 2 and Phase 3",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := app.Planner.Phases(cmd.Context(), in.request())
			if err != nil {
				return err
			}
			return render(cmd, b, func() string { return formatter.FormatPhases(*b) })
		},
	}
	in.bind(cmd.Flags())
	return cmd
}

func newGapsCmd(app *App) *cobra.Command {
	var in planInputs

	cmd := &cobra.Command{
		Use:   "gaps",
		Short: "Compare stated budget, timeline and team against the estimate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Planner.Gaps(cmd.Context(), in.request())
			if err != nil {
				return err
			}
			return render(cmd, resp, func() string { return formatter.FormatGaps(resp.Gaps) })
		},
	}
	in.bind(cmd.Flags())
	return cmd
}

func newMatchCmd(a *App) *cobra.Command {
	var (
		description string
		features    []string
		categories  []string
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Find known project archetypes similar to a description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := a.Planner.Match(cmd.Context(), app.MatchRequest{
				Description: description,
				Features:    trimAll(features),
				Categories:  trimAll(categories),
			})
			if err != nil {
				return err
			}
			return render(cmd, matches, func() string { return formatter.FormatMatches(matches) })
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Short description of the product")
	cmd.Flags().StringSliceVarP(&features, "feature", "f", nil, "Feature ID or name (repeatable or comma-separated)")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "Restrict matches to these categories")
	return cmd
}
