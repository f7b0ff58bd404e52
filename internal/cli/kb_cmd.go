package cli

import (
	"fmt"

	"github.com/alexanderramin/blueprint/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newKBCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "kb",
		Aliases: []string{"knowledge-base"},
		Short:   "Inspect and replace the archetype knowledge base",
	}

	cmd.AddCommand(
		newKBListCmd(app),
		newKBImportCmd(app),
		newKBFeaturesCmd(app),
		newKBHideCmd(app, true),
		newKBHideCmd(app, false),
		newKBHistoryCmd(app),
	)

	return cmd
}

func newKBListCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored archetypes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			archetypes, err := app.Catalog.ListArchetypes(cmd.Context(), category)
			if err != nil {
				return err
			}
			return render(cmd, archetypes, func() string { return formatter.FormatArchetypes(archetypes) })
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only archetypes in this category")
	return cmd
}

func newKBImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Replace the knowledge base with the contents of a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Catalog.ImportKnowledgeBase(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return render(cmd, res, func() string { return formatter.FormatImportResult(*res) })
		},
	}
}

func newKBFeaturesCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "features",
		Short: "List the selectable feature catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			features, err := app.Catalog.ListFeatures(cmd.Context(), all)
			if err != nil {
				return err
			}
			return render(cmd, features, func() string { return formatter.FormatFeatures(features) })
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Include hidden features")
	return cmd
}

func newKBHideCmd(app *App, hidden bool) *cobra.Command {
	use, short, verb := "hide <feature-id>", "Hide a feature from the catalog listing", "Hid"
	if !hidden {
		use, short, verb = "unhide <feature-id>", "Show a hidden feature again", "Restored"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Catalog.SetFeatureHidden(cmd.Context(), args[0], hidden); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s feature %s\n", verb, formatter.Bold(args[0]))
			return nil
		},
	}
}

func newKBHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show knowledge-base imports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			imports, err := app.Catalog.ImportHistory(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return render(cmd, imports, func() string { return formatter.FormatImportHistory(imports, app.now()) })
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum entries to show (0 for all)")
	return cmd
}
