package handler

import (
	"net/http"

	"github.com/msomdec/recipe-box/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, users *service.UserService, tokens *service.TokenService, recipes *service.RecipeService, limiter *service.TokenBucket) {
	userHandler := NewUserHandler(users)
	authHandler := NewAuthHandler(tokens)
	recipeHandler := NewRecipeHandler(recipes)

	withLimit := func(h http.HandlerFunc) http.Handler {
		if limiter == nil {
			return h
		}
		return RateLimit(limiter, h)
	}
	withAuth := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(tokens, users, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.Handle("POST /users", withLimit(userHandler.HandleSignup))
	mux.Handle("POST /auth/login", withLimit(authHandler.HandleLogin))
	mux.HandleFunc("POST /auth/refresh", authHandler.HandleRefresh)

	mux.Handle("GET /recipes", withAuth(recipeHandler.HandleList))
	mux.Handle("POST /recipes", withAuth(recipeHandler.HandleCreate))
	mux.Handle("DELETE /recipes/{id}", withAuth(recipeHandler.HandleDelete))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
}
