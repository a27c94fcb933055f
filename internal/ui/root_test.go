package ui

import (
	"context"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/meal-finder/internal/config"
	"github.com/ytget/meal-finder/internal/mealdb"
	"github.com/ytget/meal-finder/internal/model"
	"github.com/ytget/meal-finder/internal/search"
)

type stubFetcher struct {
	meals []model.MealRecord
	err   error
}

func (s stubFetcher) Lookup(context.Context, string) ([]model.MealRecord, error) {
	return s.meals, s.err
}

func newTestRootUI(t *testing.T, fetcher mealdb.Fetcher) *RootUI {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)
	window := app.NewWindow("test")
	settings := config.NewSettings(app, config.Env{})
	controller := search.NewController(fetcher, nil, zaptest.NewLogger(t))

	return NewRootUI(window, app, controller, settings)
}

func TestRootUIInitialState(t *testing.T) {
	ui := newTestRootUI(t, stubFetcher{})

	assert.Equal(t, model.VisibleEmpty, ui.visibleSection)
	assert.True(t, ui.emptyContainer.Visible())
	assert.False(t, ui.loadingContainer.Visible())
	assert.False(t, ui.errorContainer.Visible())
	assert.False(t, ui.resultsScroll.Visible())
	assert.False(t, ui.searchBtn.Disabled())
	assert.Contains(t, ui.tipLabel.Text, TipSampleIDs)
}

func TestRootUIRenderLoading(t *testing.T) {
	ui := newTestRootUI(t, stubFetcher{})

	ui.render(model.ViewState{Loading: true, Error: "ignored while loading"})

	assert.Equal(t, model.VisibleLoading, ui.visibleSection)
	assert.True(t, ui.loadingContainer.Visible())
	assert.True(t, ui.searchBtn.Disabled())
	assert.False(t, ui.errorContainer.Visible())
	assert.False(t, ui.emptyContainer.Visible())
}

func TestRootUIRenderError(t *testing.T) {
	ui := newTestRootUI(t, stubFetcher{})

	ui.render(model.ViewState{Error: mealdb.MessageNotFound})

	assert.Equal(t, model.VisibleError, ui.visibleSection)
	assert.True(t, ui.errorContainer.Visible())
	assert.Equal(t, mealdb.MessageNotFound, ui.errorLabel.Text)
	assert.False(t, ui.searchBtn.Disabled())
	assert.False(t, ui.emptyContainer.Visible())
}

func TestRootUIRenderResults(t *testing.T) {
	ui := newTestRootUI(t, stubFetcher{})
	meals := []model.MealRecord{sampleMeal()}

	ui.render(model.ViewState{Results: meals})

	assert.Equal(t, model.VisibleResults, ui.visibleSection)
	assert.True(t, ui.resultsScroll.Visible())
	require.Len(t, ui.resultsBox.Objects, 1)
	card, ok := ui.resultsBox.Objects[0].(*MealCard)
	require.True(t, ok)
	assert.Equal(t, "52772", card.Meal().ID)

	// Same ids keep the existing cards
	ui.render(model.ViewState{Results: []model.MealRecord{sampleMeal()}})
	assert.Same(t, card, ui.resultsBox.Objects[0])
}

func TestRootUIRebuildsChangedMealWithSameID(t *testing.T) {
	ui := newTestRootUI(t, stubFetcher{})

	ui.render(model.ViewState{Results: []model.MealRecord{sampleMeal()}})
	require.Len(t, ui.resultsBox.Objects, 1)
	first := ui.resultsBox.Objects[0]

	// Same id served by another backend with different content
	changed := sampleMeal()
	changed.Name = "Teriyaki Chicken (mirror)"
	ui.render(model.ViewState{Results: []model.MealRecord{changed}})

	require.Len(t, ui.resultsBox.Objects, 1)
	assert.NotSame(t, first, ui.resultsBox.Objects[0])
	card := ui.resultsBox.Objects[0].(*MealCard)
	assert.Equal(t, "Teriyaki Chicken (mirror)", card.Meal().Name)
}

func TestRootUISubmitUpdatesController(t *testing.T) {
	ui := newTestRootUI(t, stubFetcher{meals: []model.MealRecord{sampleMeal()}})

	err := ui.controller.Submit(context.Background(), "52772")
	require.NoError(t, err)

	ui.render(ui.controller.State())
	assert.Equal(t, model.VisibleResults, ui.visibleSection)
	assert.Len(t, ui.resultsBox.Objects, 1)
}

func TestRootUILanguageChange(t *testing.T) {
	ui := newTestRootUI(t, stubFetcher{})

	ui.onLanguageChange("pt")

	assert.Equal(t, "pt", ui.settings.GetLanguage())
	assert.Equal(t, ui.localization.GetText(KeySearch), ui.searchBtn.Text)
	assert.Equal(t, ui.localization.GetText(KeyEmptyState), ui.emptyLabel.Text)
}

func TestSameMeals(t *testing.T) {
	a := []model.MealRecord{{ID: "1"}, {ID: "2"}}

	assert.True(t, sameMeals(nil, nil))
	assert.False(t, sameMeals(nil, []model.MealRecord{}))
	assert.True(t, sameMeals(a, []model.MealRecord{{ID: "1"}, {ID: "2"}}))
	assert.False(t, sameMeals(a, []model.MealRecord{{ID: "1"}, {ID: "2", Name: "changed"}}))
	assert.False(t, sameMeals(a, []model.MealRecord{{ID: "2"}, {ID: "1"}}))
	assert.False(t, sameMeals(a, a[:1]))
}
