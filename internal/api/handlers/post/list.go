package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Chirp/internal/core/posts"
)

// ListHandler handles feed listing requests
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{
		service: service,
	}
}

// HandleList handles GET /api/posts
// Public: returns the 100 most recent posts joined with author profiles.
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	feed, err := h.service.ListPosts(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(feed); err != nil {
		// Log encoding errors but don't return error response (headers already sent)
		log.Printf("Failed to encode feed response: %v", err)
	}
}
