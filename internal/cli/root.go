// Package cli provides the command-line interface for Meal Finder.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/spf13/cobra"

	"github.com/ytget/meal-finder/internal/cli/commands"
	"github.com/ytget/meal-finder/internal/config"
	"github.com/ytget/meal-finder/internal/logger"
)

// Version information (set at build time).
var Version = "dev"

// NewRootCmd creates and returns the root command.
func NewRootCmd(rt *commands.Runtime) *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "meal-finder",
		Short: "Meal Finder - recipe lookup for TheMealDB",
		Long: `Meal Finder looks up meals on TheMealDB by id and prints the
ingredients and instructions, or opens the recipe video and source page.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			env, err := config.LoadEnv()
			if err != nil {
				return fmt.Errorf("failed to load environment: %w", err)
			}
			rt.ClientConfig = env.ClientConfig()

			// Flags win over the environment
			flags := cmd.Flags()
			if flags.Changed("base-url") {
				if !govalidator.IsRequestURL(baseURL) {
					return fmt.Errorf("invalid --base-url %q", baseURL)
				}
				rt.ClientConfig.BaseURL = baseURL
			}
			if flags.Changed("timeout") {
				rt.ClientConfig.Timeout = timeout
			}

			if verbose {
				logger.Init(env.DevLogs)
				rt.Log = logger.Get()
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Lookup API base URL (default: "+config.DefaultAPIBaseURL+")")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "HTTP timeout, 0 for none")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log lookups to stderr")

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewLookupCommand(rt))
	rootCmd.AddCommand(commands.NewOpenCommand(rt))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	defer logger.Sync()

	rootCmd := NewRootCmd(commands.NewRuntime())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
