package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/meal-finder/internal/config"
	"github.com/ytget/meal-finder/internal/logger"
	"github.com/ytget/meal-finder/internal/mealdb"
	"github.com/ytget/meal-finder/internal/search"
	"github.com/ytget/meal-finder/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.meal-finder"
	AppName = "Meal Finder"

	WindowWidth  = 420
	WindowHeight = 760
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Printf("invalid environment, using defaults: %v\n", err)
		env = config.Env{DevLogs: true}
	}

	logger.Init(env.DevLogs)
	defer logger.Sync()
	log := logger.Get()

	// Log version information
	log.Info("Meal Finder starting", zap.String("version", version))

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	} else {
		log.Debug("App icon not loaded", zap.Error(err))
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp, env)
	client := mealdb.NewClient(settings.ClientConfig())
	log.Info("Lookup client ready", zap.String("base_url", client.BaseURL()))

	// The Fyne app opens links with the platform handler
	controller := search.NewController(client, myApp, log.Named("search"))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, controller, settings)

	// Show and run
	myWindow.ShowAndRun()
}
