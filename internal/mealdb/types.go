package mealdb

import "github.com/ytget/meal-finder/internal/model"

// lookupResponse is the envelope returned by lookup.php. Meals is nil when
// the service answers {"meals": null} or omits the key.
type lookupResponse struct {
	Meals []model.MealRecord `json:"meals"`
}
