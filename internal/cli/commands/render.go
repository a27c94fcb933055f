package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ytget/meal-finder/internal/model"
)

// instructionsWidth is the wrap width for the instructions block
const instructionsWidth = 80

type mealsPayload struct {
	Meals []model.MealRecord `json:"meals"`
}

func renderJSON(w io.Writer, meals []model.MealRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(mealsPayload{Meals: meals})
}

// renderMeal prints one meal as a heading, an ingredients table and the
// instructions.
func renderMeal(w io.Writer, meal *model.MealRecord) {
	_, _ = fmt.Fprintf(w, "%s (#%s)\n", meal.Name, meal.ID)

	tags := []string{meal.Category}
	if meal.HasArea() {
		tags = append(tags, meal.Area)
	}
	_, _ = fmt.Fprintf(w, "%s\n\n", strings.Join(tags, " · "))

	ingredients := model.DeriveIngredients(*meal)
	if len(ingredients) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", "Measure", "Ingredient"})
		for i, entry := range ingredients {
			t.AppendRow(table.Row{i + 1, strings.TrimSpace(entry.Measure), strings.TrimSpace(entry.Name)})
		}
		t.Render()
		_, _ = fmt.Fprintln(w)
	}

	if meal.Instructions != "" {
		_, _ = fmt.Fprintln(w, "Instructions:")
		_, _ = fmt.Fprintln(w, text.WrapSoft(meal.Instructions, instructionsWidth))
		_, _ = fmt.Fprintln(w)
	}

	if meal.HasVideo() {
		_, _ = fmt.Fprintf(w, "Video:  %s\n", meal.YouTube)
	}
	if meal.HasSource() {
		_, _ = fmt.Fprintf(w, "Source: %s\n", meal.Source)
	}
}
