package posts

import "context"

// Service defines the business logic interface for posts
type Service interface {
	// ListPosts returns the most recent posts, newest first, capped at 100,
	// each joined with its author's public profile from the directory.
	// Fails whole if any post's author cannot be resolved.
	ListPosts(ctx context.Context) ([]*FeedViewPost, error)

	// CreatePost validates content and inserts a single post row.
	// The store assigns ID and CreatedAt. The bare post is returned;
	// no author join happens on the write path.
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post and fills in the store-assigned
	// ID and CreatedAt on the given post.
	Create(ctx context.Context, post *Post) error

	// GetRecent retrieves up to limit posts ordered by creation time
	// descending.
	GetRecent(ctx context.Context, limit int) ([]*Post, error)
}
