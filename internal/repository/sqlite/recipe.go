package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/msomdec/recipe-box/internal/domain"
)

// RecipeRepository implements domain.RecipeRepository using SQLite.
type RecipeRepository struct {
	db *sql.DB
}

// NewRecipeRepository creates a new SQLite-backed RecipeRepository.
func NewRecipeRepository(db *DB) *RecipeRepository {
	return &RecipeRepository{db: db.SqlDB}
}

func (r *RecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO recipes (id, user_id, title, recipe_url, image_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		recipe.ID, recipe.UserID, recipe.Title, recipe.RecipeURL, recipe.ImageURL, now,
	)
	if err != nil {
		return fmt.Errorf("insert recipe: %w", err)
	}

	recipe.CreatedAt = now
	return nil
}

func (r *RecipeRepository) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	recipe := &domain.Recipe{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, recipe_url, image_url, created_at
		 FROM recipes WHERE id = ?`, id,
	).Scan(&recipe.ID, &recipe.UserID, &recipe.Title, &recipe.RecipeURL, &recipe.ImageURL, &recipe.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query recipe by id: %w", err)
	}
	return recipe, nil
}

func (r *RecipeRepository) ListByUser(ctx context.Context, userID string) ([]domain.Recipe, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, recipe_url, image_url, created_at
		 FROM recipes WHERE user_id = ? ORDER BY created_at, id`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query recipes by user: %w", err)
	}
	defer rows.Close()

	var recipes []domain.Recipe
	for rows.Next() {
		var recipe domain.Recipe
		if err := rows.Scan(&recipe.ID, &recipe.UserID, &recipe.Title, &recipe.RecipeURL, &recipe.ImageURL, &recipe.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	return recipes, rows.Err()
}

func (r *RecipeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
