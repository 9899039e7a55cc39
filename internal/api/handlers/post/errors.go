package post

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Chirp/internal/core/posts"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	case errors.Is(err, posts.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "AuthRequired",
			"Authentication required")

	case errors.Is(err, posts.ErrAuthorNotFound):
		// Consistency fault: a stored post references an author the
		// directory doesn't know. Internal by classification.
		log.Printf("Consistency fault in post handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"Author for post not found")

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
