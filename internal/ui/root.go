package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/meal-finder/internal/config"
	"github.com/ytget/meal-finder/internal/logger"
	"github.com/ytget/meal-finder/internal/mealdb"
	"github.com/ytget/meal-finder/internal/model"
	"github.com/ytget/meal-finder/internal/search"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	controller   *search.Controller
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	log          *zap.Logger

	// Header
	titleLabel    *widget.Label
	subtitleLabel *widget.Label
	tipLabel      *widget.Label

	// Search bar
	searchEntry *widget.Entry
	searchBtn   *widget.Button

	// Error banner
	errorLabel     *widget.Label
	errorContainer *fyne.Container

	// Loading indicator
	loadingLabel     *widget.Label
	loadingSpinner   *widget.ProgressBarInfinite
	loadingContainer *fyne.Container

	// Results
	resultsHeader   *widget.Label
	resultsBox      *fyne.Container
	resultsScroll   *container.Scroll
	renderedResults []model.MealRecord
	visibleSection  model.Visibility

	// Empty state
	emptyLabel     *widget.Label
	emptyContainer *fyne.Container
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, controller *search.Controller, settings *config.Settings) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		controller:   controller,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		log:          logger.Get().Named("ui"),
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Render on every controller state change
	ui.controller.OnChange(ui.onStateChange)
	ui.render(ui.controller.State())

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Header
	ui.titleLabel = widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.subtitleLabel = widget.NewLabel(ui.localization.GetText(KeyAppSubtitle))
	ui.subtitleLabel.Importance = widget.LowImportance
	ui.tipLabel = widget.NewLabel(ui.tipText())
	ui.tipLabel.Wrapping = fyne.TextWrapWord
	ui.tipLabel.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, nil, settingsBtn,
		container.NewVBox(ui.titleLabel, ui.subtitleLabel))

	// Search bar
	ui.searchEntry = ui.mobile.CreateMobileEntry(ui.localization.GetText(KeySearchHint))
	ui.searchEntry.OnChanged = ui.controller.SetQuery
	// Trigger search when user presses Enter in the search field
	ui.searchEntry.OnSubmitted = func(string) {
		ui.onSearchClick()
	}
	ui.searchBtn = ui.mobile.CreateMobileButton(ui.localization.GetText(KeySearch), ui.onSearchClick)
	ui.searchBtn.Importance = widget.HighImportance
	searchBar := container.NewBorder(nil, nil, widget.NewLabel(IconSearch), ui.searchBtn, ui.searchEntry)

	// Error banner (hidden by default)
	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorContainer = container.NewPadded(ui.errorLabel)
	ui.errorContainer.Hide()

	// Loading indicator (hidden by default)
	ui.loadingSpinner = widget.NewProgressBarInfinite()
	ui.loadingLabel = widget.NewLabel(ui.localization.GetText(KeySearching))
	ui.loadingLabel.Alignment = fyne.TextAlignCenter
	ui.loadingContainer = container.NewVBox(ui.loadingSpinner, ui.loadingLabel)
	ui.loadingContainer.Hide()

	top := container.NewVBox(header, ui.tipLabel, searchBar, ui.errorContainer, ui.loadingContainer)

	// Results
	ui.resultsHeader = widget.NewLabel(ui.localization.GetText(KeyResults))
	ui.resultsHeader.TextStyle = fyne.TextStyle{Bold: true}
	ui.resultsBox = container.NewVBox()
	ui.resultsScroll = container.NewVScroll(container.NewVBox(ui.resultsHeader, ui.resultsBox))
	ui.resultsScroll.Hide()

	// Empty state
	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyEmptyState))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.emptyLabel.Importance = widget.LowImportance
	emptyContent := container.NewVBox()
	if img := newRemoteImage(EmptyStateImageURL, fyne.NewSquareSize(EmptyStateImageSize), canvas.ImageFillContain); img != nil {
		emptyContent.Add(container.NewCenter(img))
	}
	emptyContent.Add(ui.emptyLabel)
	ui.emptyContainer = container.NewCenter(emptyContent)

	content := container.NewBorder(
		top, // top
		nil, // bottom
		nil, // left
		nil, // right
		container.NewStack(ui.resultsScroll, ui.emptyContainer), // center
	)

	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))
	ui.subtitleLabel.SetText(ui.localization.GetText(KeyAppSubtitle))
	ui.tipLabel.SetText(ui.tipText())
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchHint))
	ui.searchBtn.SetText(ui.localization.GetText(KeySearch))
	ui.loadingLabel.SetText(ui.localization.GetText(KeySearching))
	ui.resultsHeader.SetText(ui.localization.GetText(KeyResults))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyEmptyState))

	// Cards carry localized section titles; rebuild them
	ui.renderedResults = nil
	ui.render(ui.controller.State())
}

// tipText returns the localized tip listing known-good ids
func (ui *RootUI) tipText() string {
	return ui.localization.GetText(KeyTipLabel) + " " + ui.localization.GetText(KeyTipText) + " " + TipSampleIDs
}

// onSearchClick submits the search field. The lookup runs off the UI thread;
// results arrive through onStateChange.
func (ui *RootUI) onSearchClick() {
	query := ui.searchEntry.Text
	go func() {
		if err := ui.controller.Submit(context.Background(), query); err != nil {
			ui.log.Debug("Search finished with error", zap.String("query", query), zap.Error(err))
		}
	}()
}

// onOpenLink forwards a card's link tap to the controller
func (ui *RootUI) onOpenLink(url string) {
	ui.controller.OpenExternalLink(url)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies changed settings
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	// Rebuild the lookup client in case the base URL changed
	ui.controller.SetFetcher(mealdb.NewClient(ui.settings.ClientConfig()))
}

// onStateChange is called by the controller from any goroutine
func (ui *RootUI) onStateChange(state model.ViewState) {
	fyne.Do(func() {
		ui.render(state)
	})
}

// render brings the widgets in line with state. Must run on the UI thread.
func (ui *RootUI) render(state model.ViewState) {
	visible := state.Visible()
	ui.visibleSection = visible

	if state.Loading {
		ui.searchBtn.Disable()
	} else {
		ui.searchBtn.Enable()
	}

	ui.errorLabel.SetText(state.Error)
	setVisible(ui.errorContainer, visible == model.VisibleError)

	if visible == model.VisibleLoading {
		ui.loadingSpinner.Start()
	} else {
		ui.loadingSpinner.Stop()
	}
	setVisible(ui.loadingContainer, visible == model.VisibleLoading)

	if !sameMeals(ui.renderedResults, state.Results) {
		ui.rebuildResults(state.Results)
	}
	setVisible(ui.resultsScroll, visible == model.VisibleResults)
	setVisible(ui.emptyContainer, visible == model.VisibleEmpty)
}

// rebuildResults replaces the result cards
func (ui *RootUI) rebuildResults(meals []model.MealRecord) {
	ui.resultsBox.RemoveAll()
	for _, meal := range meals {
		ui.resultsBox.Add(NewMealCard(meal, ui.localization, ui.onOpenLink))
	}
	ui.renderedResults = meals
	ui.resultsBox.Refresh()
	ui.resultsScroll.ScrollToTop()
}

// setVisible shows or hides obj
func setVisible(obj fyne.CanvasObject, visible bool) {
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}

// sameMeals reports whether two result lists render identically
func sameMeals(a, b []model.MealRecord) bool {
	if len(a) != len(b) {
		return false
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
