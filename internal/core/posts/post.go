package posts

import (
	"time"

	"Chirp/internal/directory"
)

// Post represents a single post row.
// Posts are immutable: there is no update or delete operation.
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Content   string    `json:"content" db:"content"`
	ID        int64     `json:"id" db:"id"`
}

// CreatePostRequest represents input for creating a new post.
// AuthorID is always derived from the authenticated session, never from
// the client body.
type CreatePostRequest struct {
	AuthorID string `json:"-"`
	Content  string `json:"content"`
}

// FeedViewPost pairs a post with its author's public profile.
// The author is re-resolved from the directory on every list call;
// nothing is cached or persisted.
type FeedViewPost struct {
	Post   *Post                    `json:"post"`
	Author *directory.PublicProfile `json:"author"`
}
