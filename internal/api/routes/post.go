package routes

import (
	"Chirp/internal/api/handlers/post"
	"Chirp/internal/api/middleware"
	"Chirp/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers the post endpoints on the router
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.AuthMiddleware) {
	listHandler := post.NewListHandler(service)
	createHandler := post.NewCreateHandler(service)

	// GET /api/posts - public feed, no authentication required
	r.Get("/api/posts", listHandler.HandleList)

	// POST /api/posts - create a post, requires a valid session
	r.With(authMiddleware.RequireAuth).Post("/api/posts", createHandler.HandleCreate)
}
