package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/Postboard/internal/domain/contract"
	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	"github.com/mikiasgoitom/Postboard/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
)

// VoteUsecase handles the like/dislike toggle on posts.
type VoteUsecase struct {
	voteRepo  contract.IVoteRepository
	postRepo  contract.IPostRepository
	tx        contract.ITransactor
	session   usecasecontract.ISessionResolver
	uuidgen   contract.IUUIDGenerator
	logger    usecasecontract.IAppLogger
	postCache contract.IPostCache
}

// NewVoteUsecase creates and returns a new VoteUsecase instance.
func NewVoteUsecase(
	voteRepo contract.IVoteRepository,
	postRepo contract.IPostRepository,
	tx contract.ITransactor,
	session usecasecontract.ISessionResolver,
	uuidgen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *VoteUsecase {
	return &VoteUsecase{
		voteRepo: voteRepo,
		postRepo: postRepo,
		tx:       tx,
		session:  session,
		uuidgen:  uuidgen,
		logger:   logger,
	}
}

var _ usecasecontract.IVoteUseCase = (*VoteUsecase)(nil)

// SetPostCache lets successful votes drop the cached post listings.
func (u *VoteUsecase) SetPostCache(cache contract.IPostCache) {
	u.postCache = cache
}

// ToggleVote applies the user's like (isLike) or dislike to a post.
// Repeating the current vote retracts it; the opposite vote switches it.
func (u *VoteUsecase) ToggleVote(ctx context.Context, postID string, isLike bool) (*entity.VoteOutcome, error) {
	userID, ok := u.session.UserID(ctx)
	if !ok || userID == "" {
		return &entity.VoteOutcome{Status: entity.StatusUnauthorized}, nil
	}
	if postID == "" {
		return &entity.VoteOutcome{Status: entity.StatusNotFound}, nil
	}

	var outcome *entity.VoteOutcome
	err := u.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		// fn may run more than once when the store retries a transient abort
		outcome = nil
		o, err := u.toggle(txCtx, postID, userID, isLike)
		if err != nil {
			return err
		}
		outcome = o
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle vote: %w", err)
	}

	if outcome.Status.OK() {
		metrics.IncVoteTransition(outcome.Transition.From.String(), outcome.Transition.To.String())
		if u.postCache != nil {
			if err := u.postCache.InvalidatePostLists(ctx); err != nil {
				u.logger.Warningf("failed to invalidate post lists after vote on %s: %v", postID, err)
			}
		}
	}
	return outcome, nil
}

func (u *VoteUsecase) toggle(ctx context.Context, postID, userID string, isLike bool) (*entity.VoteOutcome, error) {
	existing, err := u.voteRepo.GetVote(ctx, postID, userID)
	if err != nil {
		if !errors.Is(err, contract.ErrVoteNotFound) {
			return nil, fmt.Errorf("failed to retrieve existing vote: %w", err)
		}
		existing = nil
	}

	transition := entity.NextVoteTransition(entity.VoteStateOf(existing), isLike)

	post, err := u.postRepo.ApplyVoteDelta(ctx, postID, transition.LikesDelta, transition.DislikesDelta)
	if err != nil {
		if errors.Is(err, contract.ErrPostNotFound) {
			return &entity.VoteOutcome{Status: entity.StatusNotFound, Transition: transition}, nil
		}
		return nil, fmt.Errorf("failed to update post counters: %w", err)
	}

	if err := u.writeVote(ctx, existing, transition, postID, userID, isLike); err != nil {
		if !u.tx.Atomic() {
			u.compensate(ctx, postID, transition)
		}
		return nil, fmt.Errorf("failed to %s vote record: %w", transition.Action, err)
	}

	return &entity.VoteOutcome{
		Status:     entity.StatusSuccess,
		Transition: transition,
		Likes:      post.Likes,
		Dislikes:   post.Dislikes,
	}, nil
}

func (u *VoteUsecase) writeVote(ctx context.Context, existing *entity.Vote, t entity.VoteTransition, postID, userID string, isLike bool) error {
	switch t.Action {
	case entity.VoteActionCreate:
		now := time.Now()
		return u.voteRepo.CreateVote(ctx, &entity.Vote{
			ID:        u.uuidgen.NewUUID(),
			PostID:    postID,
			UserID:    userID,
			IsLike:    isLike,
			CreatedAt: now,
			UpdatedAt: now,
		})
	case entity.VoteActionUpdate:
		return u.voteRepo.SetIsLike(ctx, existing.ID, isLike)
	case entity.VoteActionDelete:
		return u.voteRepo.DeleteVote(ctx, existing.ID)
	default:
		return fmt.Errorf("unknown vote action %v", t.Action)
	}
}

// compensate reverts the counter change when the store cannot roll it back.
func (u *VoteUsecase) compensate(ctx context.Context, postID string, t entity.VoteTransition) {
	likes, dislikes := t.Inverse()
	if _, err := u.postRepo.ApplyVoteDelta(ctx, postID, likes, dislikes); err != nil {
		metrics.IncVoteCompensation(false)
		u.logger.Errorf("vote counters out of step for post %s: rollback of %s->%s failed: %v", postID, t.From, t.To, err)
		return
	}
	metrics.IncVoteCompensation(true)
	u.logger.Warnf("rolled back vote counters for post %s after failed %s", postID, t.Action)
}

// GetUserVote returns the caller's current vote on a post.
func (u *VoteUsecase) GetUserVote(ctx context.Context, postID string) (entity.VoteState, entity.ActionStatus, error) {
	userID, ok := u.session.UserID(ctx)
	if !ok || userID == "" {
		return entity.VoteStateNone, entity.StatusUnauthorized, nil
	}
	vote, err := u.voteRepo.GetVote(ctx, postID, userID)
	if err != nil {
		if errors.Is(err, contract.ErrVoteNotFound) {
			return entity.VoteStateNone, entity.StatusSuccess, nil
		}
		return entity.VoteStateNone, "", fmt.Errorf("failed to get user's vote: %w", err)
	}
	return entity.VoteStateOf(vote), entity.StatusSuccess, nil
}
