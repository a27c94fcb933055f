package model

import "strings"

// IngredientEntry is a derived ingredient/measure pair ready for display
type IngredientEntry struct {
	Name    string
	Measure string
}

// Label returns the entry formatted as "{measure} {ingredient}"
func (e IngredientEntry) Label() string {
	return strings.TrimSpace(e.Measure + " " + e.Name)
}

// DeriveIngredients scans the slots in order and keeps those whose ingredient
// name is non-blank. Output order follows slot order.
func DeriveIngredients(meal MealRecord) []IngredientEntry {
	entries := make([]IngredientEntry, 0, SlotCount)
	for _, slot := range meal.Slots {
		if !slot.Present || strings.TrimSpace(slot.Name) == "" {
			continue
		}
		entries = append(entries, IngredientEntry{
			Name:    slot.Name,
			Measure: slot.Measure,
		})
	}
	return entries
}
