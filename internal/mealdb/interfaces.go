package mealdb

import (
	"context"

	"github.com/ytget/meal-finder/internal/model"
)

// Fetcher defines the interface for meal lookups by identifier.
type Fetcher interface {
	// Lookup returns the records matching id. It fails with *NetworkError on
	// transport or status failures and with *NotFoundError when nothing matched.
	Lookup(ctx context.Context, id string) ([]model.MealRecord, error)
}
