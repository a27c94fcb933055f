package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/meal-finder/internal/model"
	"github.com/ytget/meal-finder/internal/platform"
	"github.com/ytget/meal-finder/internal/search"
)

// Link targets accepted by --open
const (
	OpenVideo  = "video"
	OpenSource = "source"
)

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rt *Runtime) *cobra.Command {
	var (
		asJSON bool
		open   string
	)

	cmd := &cobra.Command{
		Use:   "lookup <meal-id>",
		Short: "Look up a meal by id",
		Long: `Look up a meal on TheMealDB by its numeric id and print its
category, area, ingredients and instructions.

Known ids to try: 52772, 52802, 52844, 52977, 53013.`,
		Example: `  meal-finder lookup 52772
  meal-finder lookup 52772 --json
  meal-finder lookup 52772 --open video`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			switch open {
			case "", OpenVideo, OpenSource:
				return nil
			default:
				return fmt.Errorf("invalid --open value %q (want %s or %s)", open, OpenVideo, OpenSource)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			controller := search.NewController(rt.NewFetcher(rt.ClientConfig), rt.Opener, rt.logger())

			if err := controller.Submit(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("%s: %w", controller.State().Error, err)
			}

			meals := controller.State().Results
			out := cmd.OutOrStdout()
			if asJSON {
				if err := renderJSON(out, meals); err != nil {
					return err
				}
			} else {
				for i := range meals {
					renderMeal(out, &meals[i])
				}
			}

			if open == "" {
				return nil
			}
			return openMealLink(cmd, rt, &meals[0], open)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw meal records as JSON")
	cmd.Flags().StringVar(&open, "open", "", "Open the first meal's link (video|source)")

	_ = cmd.RegisterFlagCompletionFunc("open", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{OpenVideo, OpenSource}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// openMealLink opens the meal's video or source page
func openMealLink(cmd *cobra.Command, rt *Runtime, meal *model.MealRecord, target string) error {
	raw := meal.YouTube
	if target == OpenSource {
		raw = meal.Source
	}
	if raw == "" {
		return fmt.Errorf("meal %s has no %s link", meal.ID, target)
	}

	link, err := platform.ParseLink(raw)
	if err != nil {
		return err
	}
	if err := rt.Opener.OpenURL(link); err != nil {
		return fmt.Errorf("couldn't open %s: %w", link, err)
	}

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Opened %s\n", link)
	return nil
}
