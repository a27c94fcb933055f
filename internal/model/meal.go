package model

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// SlotCount is the number of positional ingredient/measure pairs a meal carries.
const SlotCount = 20

// Wire keys of the positional slot fields, formatted with the 1-based slot number.
const (
	IngredientKeyFormat = "strIngredient%d"
	MeasureKeyFormat    = "strMeasure%d"
)

// IngredientSlot is one positional ingredient/measure pair. Present is false
// when the ingredient key was absent or null in the payload.
type IngredientSlot struct {
	Name    string
	Measure string
	Present bool
}

// MealRecord is a single meal as returned by the lookup endpoint
type MealRecord struct {
	ID           string
	Name         string
	Thumbnail    string
	Category     string
	Area         string // optional
	Instructions string
	YouTube      string // optional
	Source       string // optional
	Slots        [SlotCount]IngredientSlot
}

// mealWire mirrors the named keys of the payload
type mealWire struct {
	ID           string `json:"idMeal"`
	Name         string `json:"strMeal"`
	Thumbnail    string `json:"strMealThumb"`
	Category     string `json:"strCategory"`
	Area         string `json:"strArea"`
	Instructions string `json:"strInstructions"`
	YouTube      string `json:"strYoutube"`
	Source       string `json:"strSource"`
}

// UnmarshalJSON decodes the named fields and folds the strIngredientN /
// strMeasureN keys into Slots.
func (m *MealRecord) UnmarshalJSON(data []byte) error {
	var w mealWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*m = MealRecord{
		ID:           w.ID,
		Name:         w.Name,
		Thumbnail:    w.Thumbnail,
		Category:     w.Category,
		Area:         w.Area,
		Instructions: w.Instructions,
		YouTube:      w.YouTube,
		Source:       w.Source,
	}

	parsed := gjson.ParseBytes(data)
	for i := range m.Slots {
		name := parsed.Get(fmt.Sprintf(IngredientKeyFormat, i+1))
		measure := parsed.Get(fmt.Sprintf(MeasureKeyFormat, i+1))
		m.Slots[i] = IngredientSlot{
			Name:    name.String(),
			Measure: measure.String(),
			Present: name.Exists() && name.Type != gjson.Null,
		}
	}

	return nil
}

// MarshalJSON writes the record back in the wire shape. Absent slots are
// written as null.
func (m MealRecord) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"idMeal":          m.ID,
		"strMeal":         m.Name,
		"strMealThumb":    m.Thumbnail,
		"strCategory":     m.Category,
		"strArea":         nullable(m.Area),
		"strInstructions": m.Instructions,
		"strYoutube":      nullable(m.YouTube),
		"strSource":       nullable(m.Source),
	}

	for i, slot := range m.Slots {
		nameKey := fmt.Sprintf(IngredientKeyFormat, i+1)
		measureKey := fmt.Sprintf(MeasureKeyFormat, i+1)
		if !slot.Present {
			out[nameKey] = nil
			out[measureKey] = nil
			continue
		}
		out[nameKey] = slot.Name
		out[measureKey] = slot.Measure
	}

	return json.Marshal(out)
}

// HasArea reports whether the optional area/region is set
func (m *MealRecord) HasArea() bool {
	return m.Area != ""
}

// HasVideo reports whether an external video link is set
func (m *MealRecord) HasVideo() bool {
	return m.YouTube != ""
}

// HasSource reports whether an external source link is set
func (m *MealRecord) HasSource() bool {
	return m.Source != ""
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
