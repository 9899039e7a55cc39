package posts

import (
	"context"
	"fmt"

	"Chirp/internal/directory"
)

// feedLimit caps both the post scan and the author batch lookup.
const feedLimit = 100

type postService struct {
	repo Repository
	dir  directory.Client
}

// NewPostService creates a new post service
func NewPostService(repo Repository, dir directory.Client) Service {
	return &postService{
		repo: repo,
		dir:  dir,
	}
}

// ListPosts fetches the recent posts and joins each with its author's
// public profile. The join is recomputed on every call.
func (s *postService) ListPosts(ctx context.Context) ([]*FeedViewPost, error) {
	recent, err := s.repo.GetRecent(ctx, feedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	feed := make([]*FeedViewPost, 0, len(recent))
	if len(recent) == 0 {
		return feed, nil
	}

	// Author IDs are passed through as-is; posts commonly share authors and
	// the directory tolerates repeated IDs in a batch.
	authorIDs := make([]string, len(recent))
	for i, post := range recent {
		authorIDs[i] = post.AuthorID
	}

	users, err := s.dir.GetUserList(ctx, authorIDs, feedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post authors: %w", err)
	}

	profiles := make(map[string]*directory.PublicProfile, len(users))
	for _, user := range users {
		profile := directory.ProfileFor(user)
		profiles[profile.ID] = profile
	}

	for _, post := range recent {
		author, found := profiles[post.AuthorID]
		if !found {
			// Strict by design: a post with no resolvable author fails the
			// whole call instead of degrading to a partial list.
			return nil, ErrAuthorNotFound
		}
		feed = append(feed, &FeedViewPost{
			Post:   post,
			Author: author,
		})
	}

	return feed, nil
}

// CreatePost validates the content and inserts a single post row.
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	if req.AuthorID == "" {
		return nil, ErrUnauthenticated
	}

	if err := ValidateContent(req.Content); err != nil {
		return nil, err
	}

	post := &Post{
		AuthorID: req.AuthorID,
		Content:  req.Content,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}
