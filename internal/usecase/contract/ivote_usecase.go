package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
)

type IVoteUseCase interface {
	ToggleVote(ctx context.Context, postID string, isLike bool) (*entity.VoteOutcome, error)
	GetUserVote(ctx context.Context, postID string) (entity.VoteState, entity.ActionStatus, error)
}
