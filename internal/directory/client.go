// Package directory provides a client for the external user directory that
// owns all account data. The directory is the source of truth for user
// identity; this service never stores user records locally and re-fetches
// profile data on every read.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client defines the read surface this service consumes from the directory.
// Narrow by design so tests can substitute a mock.
type Client interface {
	// GetUserList retrieves users by ID in a single batch call, capped at limit.
	// Duplicate IDs are permitted; the directory tolerates repeats.
	// Missing users are simply absent from the result, not an error.
	GetUserList(ctx context.Context, userIDs []string, limit int) ([]User, error)
}

// HTTPClient talks to the directory's REST API.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPClient creates a directory client for the given base URL.
// apiKey is the server-side secret used to authenticate with the directory.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetUserList implements Client against GET /v1/users.
func (c *HTTPClient) GetUserList(ctx context.Context, userIDs []string, limit int) ([]User, error) {
	q := url.Values{}
	for _, id := range userIDs {
		q.Add("user_id", id)
	}
	q.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/users?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create user list request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user list: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("directory returned status %d", resp.StatusCode)
	}

	var users []User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("failed to decode user list: %w", err)
	}

	return users, nil
}
