package contract

import (
	"context"

	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
)

// IVoteRepository persists the per (post, user) vote records.
type IVoteRepository interface {
	// GetVote returns ErrVoteNotFound when the user has no vote on the post.
	GetVote(ctx context.Context, postID, userID string) (*entity.Vote, error)
	CreateVote(ctx context.Context, vote *entity.Vote) error
	SetIsLike(ctx context.Context, voteID string, isLike bool) error
	DeleteVote(ctx context.Context, voteID string) error
	DeleteByPostID(ctx context.Context, postID string) (int64, error)
}
