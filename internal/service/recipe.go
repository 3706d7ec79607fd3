package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/recipe-box/internal/domain"
)

// RecipeService manages a user's saved recipes.
type RecipeService struct {
	recipes domain.RecipeRepository
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(recipes domain.RecipeRepository) *RecipeService {
	return &RecipeService{recipes: recipes}
}

// Create saves a new recipe for the given user.
func (s *RecipeService) Create(ctx context.Context, userID, title, recipeURL, imageURL string) (*domain.Recipe, error) {
	if title == "" || recipeURL == "" || imageURL == "" {
		return nil, fmt.Errorf("%w: title, recipe_url, and image_url are required", domain.ErrInvalidInput)
	}

	recipe := &domain.Recipe{
		UserID:    userID,
		Title:     title,
		RecipeURL: recipeURL,
		ImageURL:  imageURL,
	}

	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}

	return recipe, nil
}

// ListByUser returns all recipes saved by the given user.
func (s *RecipeService) ListByUser(ctx context.Context, userID string) ([]domain.Recipe, error) {
	return s.recipes.ListByUser(ctx, userID)
}

// Delete removes a recipe owned by the given user. A recipe belonging to
// someone else is reported as domain.ErrNotFound rather than revealing its
// existence.
func (s *RecipeService) Delete(ctx context.Context, userID, id string) error {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if recipe.UserID != userID {
		return domain.ErrNotFound
	}

	if err := s.recipes.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}
