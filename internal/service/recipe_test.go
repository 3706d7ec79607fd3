package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/recipe-box/internal/domain"
	"github.com/msomdec/recipe-box/internal/service"
)

func newTestRecipeService(t *testing.T) (*service.RecipeService, *service.UserService) {
	t.Helper()
	users, db := newTestUserService(t)
	return service.NewRecipeService(db.Recipes()), users
}

func TestRecipeService_Create_Success(t *testing.T) {
	recipes, users := newTestRecipeService(t)
	ctx := context.Background()

	user, err := users.Create(ctx, "cook", "password-long-enough", "")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	recipe, err := recipes.Create(ctx, user.ID, "Ramen", "https://example.com/ramen", "https://example.com/ramen.jpg")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if recipe.ID == "" {
		t.Fatal("expected recipe ID to be set")
	}
	if recipe.UserID != user.ID {
		t.Fatalf("expected owner %q, got %q", user.ID, recipe.UserID)
	}
}

func TestRecipeService_Create_MissingFields(t *testing.T) {
	recipes, users := newTestRecipeService(t)
	ctx := context.Background()

	user, err := users.Create(ctx, "cook", "password-long-enough", "")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	tests := []struct {
		name                       string
		title, recipeURL, imageURL string
	}{
		{"missing title", "", "https://x.example", "https://x.example/img"},
		{"missing recipe_url", "Ramen", "", "https://x.example/img"},
		{"missing image_url", "Ramen", "https://x.example", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := recipes.Create(ctx, user.ID, tc.title, tc.recipeURL, tc.imageURL)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestRecipeService_Delete_OwnerOnly(t *testing.T) {
	recipes, users := newTestRecipeService(t)
	ctx := context.Background()

	owner, err := users.Create(ctx, "owner", "password-long-enough", "")
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}
	intruder, err := users.Create(ctx, "intruder", "password-long-enough", "")
	if err != nil {
		t.Fatalf("create intruder: %v", err)
	}

	recipe, err := recipes.Create(ctx, owner.ID, "Secret Sauce", "https://x.example", "https://x.example/img")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Someone else's recipe looks like it does not exist.
	if err := recipes.Delete(ctx, intruder.ID, recipe.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign recipe, got %v", err)
	}

	if err := recipes.Delete(ctx, owner.ID, recipe.ID); err != nil {
		t.Fatalf("Delete by owner: %v", err)
	}

	remaining, err := recipes.ListByUser(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected no recipes after delete, got %d", len(remaining))
	}
}

func TestRecipeService_Delete_NotFound(t *testing.T) {
	recipes, users := newTestRecipeService(t)
	ctx := context.Background()

	user, err := users.Create(ctx, "cook", "password-long-enough", "")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if err := recipes.Delete(ctx, user.ID, "no-such-recipe"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
