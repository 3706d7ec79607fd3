package handler

import (
	"github.com/msomdec/recipe-box/internal/domain"
)

// UserDTO is the public projection of a user: everything except the
// password hash. Nothing else may ever be serialized for a user.
type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullname"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
	}
}

// RecipeDTO is the JSON representation of a recipe. Field names follow the
// wire format the API has always used.
type RecipeDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	RecipeURL string `json:"recipe_url"`
	ImageURL  string `json:"image_url"`
	User      string `json:"user"`
}

func toRecipeDTO(r *domain.Recipe) RecipeDTO {
	return RecipeDTO{
		ID:        r.ID,
		Title:     r.Title,
		RecipeURL: r.RecipeURL,
		ImageURL:  r.ImageURL,
		User:      r.UserID,
	}
}

func toRecipeDTOs(recipes []domain.Recipe) []RecipeDTO {
	dtos := make([]RecipeDTO, len(recipes))
	for i := range recipes {
		dtos[i] = toRecipeDTO(&recipes[i])
	}
	return dtos
}
