package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Chirp/internal/api/middleware"
	"Chirp/internal/core/posts"
)

// createPostBody is the accepted request body for post creation.
// The author is never read from the body; see the authorId check below.
type createPostBody struct {
	Content  string `json:"content"`
	AuthorID string `json:"authorId,omitempty"`
}

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{
		service: service,
	}
}

// HandleCreate handles POST /api/posts
// Requires authentication; creates a single post owned by the caller.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Content caps out at 280 graphemes, so anything near the body limit
	// is garbage anyway.
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var body createPostBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge",
				"Request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	// Authenticated user injected by the auth middleware
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	// SECURITY: Reject client-provided authorId to prevent impersonation;
	// the author is always the authenticated user.
	if body.AuthorID != "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest",
			"authorId must not be provided - derived from authenticated user")
		return
	}

	created, err := h.service.CreatePost(r.Context(), posts.CreatePostRequest{
		AuthorID: userID,
		Content:  body.Content,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		// Log encoding errors but don't return error response (headers already sent)
		log.Printf("Failed to encode post creation response: %v", err)
	}
}
