package domain

import (
	"context"
	"time"
)

// Recipe is a favorite recipe saved by a user. RecipeURL and ImageURL
// point at the external site the recipe was clipped from.
type Recipe struct {
	ID        string
	UserID    string
	Title     string
	RecipeURL string
	ImageURL  string
	CreatedAt time.Time
}

// RecipeRepository defines persistence operations for recipes.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *Recipe) error
	GetByID(ctx context.Context, id string) (*Recipe, error)
	ListByUser(ctx context.Context, userID string) ([]Recipe, error)
	Delete(ctx context.Context, id string) error
}
