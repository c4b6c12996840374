package contract

import (
	"context"

	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
)

// IPostRepository provides methods for managing posts in the database.
type IPostRepository interface {
	CreatePost(ctx context.Context, post *entity.Post) error
	GetPostByID(ctx context.Context, postID string) (*entity.Post, error)
	// IncrementViews bumps the view counter and returns the post after the bump.
	IncrementViews(ctx context.Context, postID string) (*entity.Post, error)
	// UpdatePostByAuthor changes title and content when the post belongs to author.
	// It reports false when no post matched.
	UpdatePostByAuthor(ctx context.Context, postID, author, title, content string) (bool, error)
	// DeletePostByAuthor removes the post when it belongs to author.
	DeletePostByAuthor(ctx context.Context, postID, author string) (bool, error)
	// GetPosts returns a page of posts, newest first, and the total count.
	GetPosts(ctx context.Context, pagination Pagination) ([]*entity.Post, int64, error)
	// ApplyVoteDelta adds the deltas to the like and dislike counters in a single
	// update and returns the post after the change. ErrPostNotFound when missing.
	ApplyVoteDelta(ctx context.Context, postID string, likes, dislikes int) (*entity.Post, error)
}
