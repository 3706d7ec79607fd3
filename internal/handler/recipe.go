package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/msomdec/recipe-box/internal/domain"
	"github.com/msomdec/recipe-box/internal/service"
)

// RecipeHandler handles recipe-related HTTP requests. All routes require
// an authenticated user in the request context.
type RecipeHandler struct {
	recipes *service.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// HandleList returns the caller's saved recipes.
// GET /recipes
// Response: {"recipes": [...]}
func (h *RecipeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	recipes, err := h.recipes.ListByUser(r.Context(), user.ID)
	if err != nil {
		slog.Error("list recipes", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"recipes": toRecipeDTOs(recipes),
	})
}

// HandleCreate saves a new recipe for the caller.
// POST /recipes
// Request:  {"title":"...","recipe_url":"...","image_url":"..."}
// Response: the created recipe
func (h *RecipeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Title     string `json:"title"`
		RecipeURL string `json:"recipe_url"`
		ImageURL  string `json:"image_url"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	required := []struct {
		name  string
		value string
	}{
		{"title", req.Title},
		{"recipe_url", req.RecipeURL},
		{"image_url", req.ImageURL},
	}
	for _, field := range required {
		if field.value == "" {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Missing `%s` in request body", field.name))
			return
		}
	}

	recipe, err := h.recipes.Create(r.Context(), user.ID, req.Title, req.RecipeURL, req.ImageURL)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("create recipe", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, toRecipeDTO(recipe))
}

// HandleDelete removes one of the caller's recipes.
// DELETE /recipes/{id}
// Response: 204 No Content
func (h *RecipeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := r.PathValue("id")
	if err := h.recipes.Delete(r.Context(), user.ID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Not Found")
			return
		}
		slog.Error("delete recipe", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
