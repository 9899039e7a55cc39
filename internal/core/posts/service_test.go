package posts

import (
	"context"
	"errors"
	"testing"
	"time"

	"Chirp/internal/directory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPostRepository is a mock implementation of Repository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetRecent(ctx context.Context, limit int) ([]*Post, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

// MockDirectory is a mock implementation of directory.Client
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) GetUserList(ctx context.Context, userIDs []string, limit int) ([]directory.User, error) {
	args := m.Called(ctx, userIDs, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.User), args.Error(1)
}

func testPosts() []*Post {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return []*Post{
		{ID: 3, AuthorID: "user_b", Content: "🚀", CreatedAt: base.Add(2 * time.Minute)},
		{ID: 2, AuthorID: "user_a", Content: "🎉", CreatedAt: base.Add(1 * time.Minute)},
		{ID: 1, AuthorID: "user_a", Content: "😀", CreatedAt: base},
	}
}

func TestListPosts_JoinsAuthorsInOrder(t *testing.T) {
	repo := new(MockPostRepository)
	dir := new(MockDirectory)
	service := NewPostService(repo, dir)

	recent := testPosts()
	repo.On("GetRecent", mock.Anything, 100).Return(recent, nil)
	dir.On("GetUserList", mock.Anything, []string{"user_b", "user_a", "user_a"}, 100).
		Return([]directory.User{
			{ID: "user_a", FirstName: "Alice", ImageURL: "https://img.example/a.png"},
			{ID: "user_b", FirstName: "Bob", ImageURL: "https://img.example/b.png"},
		}, nil).Once()

	feed, err := service.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, feed, 3)

	// Post order preserved, newest first
	assert.Equal(t, int64(3), feed[0].Post.ID)
	assert.Equal(t, int64(2), feed[1].Post.ID)
	assert.Equal(t, int64(1), feed[2].Post.ID)

	// Each post paired with its author's reduced profile
	assert.Equal(t, "Bob", feed[0].Author.Username)
	assert.Equal(t, "Alice", feed[1].Author.Username)
	assert.Equal(t, "https://img.example/a.png", feed[1].Author.ProfilePicture)

	// Two posts by the same author share the same profile content
	assert.Equal(t, feed[1].Author, feed[2].Author)

	// Exactly one batch lookup for the whole list
	dir.AssertNumberOfCalls(t, "GetUserList", 1)
}

func TestListPosts_MissingAuthorFailsWholeCall(t *testing.T) {
	repo := new(MockPostRepository)
	dir := new(MockDirectory)
	service := NewPostService(repo, dir)

	repo.On("GetRecent", mock.Anything, 100).Return(testPosts(), nil)
	// Directory only knows user_a; user_b's post has no resolvable author
	dir.On("GetUserList", mock.Anything, mock.Anything, 100).
		Return([]directory.User{{ID: "user_a", FirstName: "Alice"}}, nil)

	feed, err := service.ListPosts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthorNotFound)
	assert.Nil(t, feed)
}

func TestListPosts_EmptyFeedSkipsDirectory(t *testing.T) {
	repo := new(MockPostRepository)
	dir := new(MockDirectory)
	service := NewPostService(repo, dir)

	repo.On("GetRecent", mock.Anything, 100).Return([]*Post{}, nil)

	feed, err := service.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, feed)
	dir.AssertNotCalled(t, "GetUserList")
}

func TestListPosts_RepositoryErrorPropagates(t *testing.T) {
	repo := new(MockPostRepository)
	dir := new(MockDirectory)
	service := NewPostService(repo, dir)

	storeErr := errors.New("connection refused")
	repo.On("GetRecent", mock.Anything, 100).Return(nil, storeErr)

	_, err := service.ListPosts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	dir.AssertNotCalled(t, "GetUserList")
}

func TestListPosts_DirectoryErrorPropagates(t *testing.T) {
	repo := new(MockPostRepository)
	dir := new(MockDirectory)
	service := NewPostService(repo, dir)

	repo.On("GetRecent", mock.Anything, 100).Return(testPosts(), nil)
	dir.On("GetUserList", mock.Anything, mock.Anything, 100).
		Return(nil, directory.ErrUnavailable)

	_, err := service.ListPosts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, directory.ErrUnavailable)
}

func TestListPosts_RepeatedReadsAreStable(t *testing.T) {
	repo := new(MockPostRepository)
	dir := new(MockDirectory)
	service := NewPostService(repo, dir)

	repo.On("GetRecent", mock.Anything, 100).Return(testPosts(), nil).Twice()
	dir.On("GetUserList", mock.Anything, mock.Anything, 100).
		Return([]directory.User{
			{ID: "user_a", FirstName: "Alice", ImageURL: "https://img.example/a.png"},
			{ID: "user_b", FirstName: "Bob", ImageURL: "https://img.example/b.png"},
		}, nil).Twice()

	first, err := service.ListPosts(context.Background())
	require.NoError(t, err)
	second, err := service.ListPosts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCreatePost_InsertsValidContent(t *testing.T) {
	repo := new(MockPostRepository)
	dir := new(MockDirectory)
	service := NewPostService(repo, dir)

	now := time.Now().UTC()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Post) bool {
		return p.AuthorID == "user_a" && p.Content == "😀🎉"
	})).Run(func(args mock.Arguments) {
		post := args.Get(1).(*Post)
		post.ID = 42
		post.CreatedAt = now
	}).Return(nil)

	created, err := service.CreatePost(context.Background(), CreatePostRequest{
		AuthorID: "user_a",
		Content:  "😀🎉",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "user_a", created.AuthorID)
	assert.Equal(t, "😀🎉", created.Content)
	assert.Equal(t, now, created.CreatedAt)
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestCreatePost_RejectsInvalidContent(t *testing.T) {
	repo := new(MockPostRepository)
	dir := new(MockDirectory)
	service := NewPostService(repo, dir)

	for _, content := range []string{"", "hello", "😀hi"} {
		_, err := service.CreatePost(context.Background(), CreatePostRequest{
			AuthorID: "user_a",
			Content:  content,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	}

	// No store write happens on validation failure
	repo.AssertNotCalled(t, "Create")
}

func TestCreatePost_RequiresAuthenticatedAuthor(t *testing.T) {
	repo := new(MockPostRepository)
	dir := new(MockDirectory)
	service := NewPostService(repo, dir)

	_, err := service.CreatePost(context.Background(), CreatePostRequest{
		Content: "😀",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	repo.AssertNotCalled(t, "Create")
}

func TestCreatePost_RepositoryErrorPropagates(t *testing.T) {
	repo := new(MockPostRepository)
	dir := new(MockDirectory)
	service := NewPostService(repo, dir)

	storeErr := errors.New("insert failed")
	repo.On("Create", mock.Anything, mock.Anything).Return(storeErr)

	_, err := service.CreatePost(context.Background(), CreatePostRequest{
		AuthorID: "user_a",
		Content:  "😀",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}
