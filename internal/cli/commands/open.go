package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/meal-finder/internal/platform"
)

// NewOpenCommand creates the open command.
func NewOpenCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "open <url>",
		Short: "Open a web link with the system handler",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := platform.ParseLink(args[0])
			if err != nil {
				return err
			}
			if err := rt.Opener.OpenURL(link); err != nil {
				return fmt.Errorf("couldn't open %s: %w", link, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", link)
			return nil
		},
	}
}
