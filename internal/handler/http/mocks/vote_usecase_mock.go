package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
)

// MockVoteUsecase keeps one vote state and counters for a single post.
type MockVoteUsecase struct {
	ShouldFail bool
	Status     entity.ActionStatus
	State      entity.VoteState
	Likes      int
	Dislikes   int
	LastUserID string
}

var _ usecasecontract.IVoteUseCase = (*MockVoteUsecase)(nil)

func NewMockVoteUsecase() *MockVoteUsecase {
	return &MockVoteUsecase{Status: entity.StatusSuccess}
}

func (m *MockVoteUsecase) ToggleVote(ctx context.Context, postID string, isLike bool) (*entity.VoteOutcome, error) {
	if m.ShouldFail {
		return nil, errors.New("toggle failed")
	}
	if m.Status != entity.StatusSuccess {
		return &entity.VoteOutcome{Status: m.Status}, nil
	}
	t := entity.NextVoteTransition(m.State, isLike)
	m.State = t.To
	m.Likes += t.LikesDelta
	m.Dislikes += t.DislikesDelta
	return &entity.VoteOutcome{Status: entity.StatusSuccess, Transition: t, Likes: m.Likes, Dislikes: m.Dislikes}, nil
}

func (m *MockVoteUsecase) GetUserVote(ctx context.Context, postID string) (entity.VoteState, entity.ActionStatus, error) {
	if m.ShouldFail {
		return entity.VoteStateNone, "", errors.New("lookup failed")
	}
	return m.State, m.Status, nil
}
