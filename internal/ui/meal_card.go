package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/meal-finder/internal/model"
)

// Ingredient grid columns
const (
	IngredientColumns = 2
)

// MealCard renders one meal: image, title, chips, ingredients, instructions
// and the outbound link buttons.
type MealCard struct {
	widget.BaseWidget

	meal         model.MealRecord
	localization *Localization
	onOpenLink   func(url string)

	// UI components
	image             *canvas.Image
	titleLabel        *widget.Label
	categoryLabel     *widget.Label
	areaLabel         *widget.Label
	ingredientsBox    *fyne.Container
	instructionsLabel *widget.Label
	videoBtn          *widget.Button
	sourceBtn         *widget.Button

	content *fyne.Container
}

// NewMealCard creates a card for meal. onOpenLink receives the video or
// source URL when the matching button is tapped.
func NewMealCard(meal model.MealRecord, localization *Localization, onOpenLink func(url string)) *MealCard {
	mc := &MealCard{
		meal:         meal,
		localization: localization,
		onOpenLink:   onOpenLink,
	}
	mc.ExtendBaseWidget(mc)
	mc.createUI()
	return mc
}

// Meal returns the rendered meal
func (mc *MealCard) Meal() model.MealRecord {
	return mc.meal
}

// createUI builds the card content from the meal
func (mc *MealCard) createUI() {
	mc.image = newRemoteImage(mc.meal.Thumbnail, fyne.NewSize(MealImageWidth, MealImageHeight), canvas.ImageFillCover)

	mc.titleLabel = widget.NewLabel(mc.meal.Name)
	mc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	mc.titleLabel.Wrapping = fyne.TextWrapWord

	mc.categoryLabel = widget.NewLabel(mc.meal.Category)
	mc.categoryLabel.Importance = widget.HighImportance
	chips := container.NewHBox(mc.categoryLabel)

	mc.areaLabel = widget.NewLabel(mc.meal.Area)
	mc.areaLabel.Importance = widget.LowImportance
	if mc.meal.HasArea() {
		chips.Add(mc.areaLabel)
	}

	// Ingredients
	ingredientsTitle := widget.NewLabel(mc.localization.GetText(KeyIngredients))
	ingredientsTitle.TextStyle = fyne.TextStyle{Bold: true}
	mc.ingredientsBox = container.NewGridWithColumns(IngredientColumns)
	for _, entry := range model.DeriveIngredients(mc.meal) {
		label := widget.NewLabel(entry.Label())
		label.Wrapping = fyne.TextWrapWord
		mc.ingredientsBox.Add(label)
	}

	// Instructions
	instructionsTitle := widget.NewLabel(mc.localization.GetText(KeyInstructions))
	instructionsTitle.TextStyle = fyne.TextStyle{Bold: true}
	mc.instructionsLabel = widget.NewLabel(mc.meal.Instructions)
	mc.instructionsLabel.Wrapping = fyne.TextWrapWord

	// Links
	links := container.NewHBox()
	mc.videoBtn = widget.NewButtonWithIcon(mc.localization.GetText(KeyWatchVideo), theme.MediaPlayIcon(), func() {
		mc.openLink(mc.meal.YouTube)
	})
	mc.videoBtn.Importance = widget.DangerImportance
	if mc.meal.HasVideo() {
		links.Add(mc.videoBtn)
	}

	mc.sourceBtn = widget.NewButtonWithIcon(mc.localization.GetText(KeyViewSource), theme.DocumentIcon(), func() {
		mc.openLink(mc.meal.Source)
	})
	mc.sourceBtn.Importance = widget.HighImportance
	if mc.meal.HasSource() {
		links.Add(mc.sourceBtn)
	}

	mc.content = container.NewVBox()
	if mc.image != nil {
		mc.content.Add(mc.image)
	}
	mc.content.Add(mc.titleLabel)
	mc.content.Add(chips)
	mc.content.Add(ingredientsTitle)
	mc.content.Add(mc.ingredientsBox)
	mc.content.Add(instructionsTitle)
	mc.content.Add(mc.instructionsLabel)
	if len(links.Objects) > 0 {
		mc.content.Add(links)
	}
	mc.content.Add(widget.NewSeparator())
}

func (mc *MealCard) openLink(url string) {
	if mc.onOpenLink != nil {
		mc.onOpenLink(url)
	}
}

// CreateRenderer creates the widget renderer
func (mc *MealCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(mc.content)
}
