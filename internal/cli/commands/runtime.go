package commands

import (
	"go.uber.org/zap"

	"github.com/ytget/meal-finder/internal/mealdb"
	"github.com/ytget/meal-finder/internal/platform"
)

// Runtime carries what the commands need to reach the lookup API and the
// platform. The root command fills it in before any subcommand runs.
type Runtime struct {
	ClientConfig mealdb.Config
	NewFetcher   func(cfg mealdb.Config) mealdb.Fetcher
	Opener       platform.LinkOpener
	Log          *zap.Logger
}

// NewRuntime returns a runtime wired to the real lookup client and the OS
// link handler.
func NewRuntime() *Runtime {
	return &Runtime{
		NewFetcher: func(cfg mealdb.Config) mealdb.Fetcher {
			return mealdb.NewClient(cfg)
		},
		Opener: platform.NewSystemOpener(),
		Log:    zap.NewNop(),
	}
}

func (rt *Runtime) logger() *zap.Logger {
	if rt.Log == nil {
		return zap.NewNop()
	}
	return rt.Log
}
