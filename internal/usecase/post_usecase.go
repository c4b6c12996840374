package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/Postboard/internal/domain/contract"
	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	"github.com/mikiasgoitom/Postboard/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
)

// PostUseCaseImpl implements the IPostUseCase interface
type PostUseCaseImpl struct {
	postRepo    contract.IPostRepository
	commentRepo contract.ICommentRepository
	voteRepo    contract.IVoteRepository
	tx          contract.ITransactor
	session     usecasecontract.ISessionResolver
	uuidgen     contract.IUUIDGenerator
	logger      usecasecontract.IAppLogger
	postCache   contract.IPostCache
	perPage     int
}

// NewPostUseCase creates a new instance of PostUseCaseImpl. perPage is the
// size of a listing page.
func NewPostUseCase(
	postRepo contract.IPostRepository,
	commentRepo contract.ICommentRepository,
	voteRepo contract.IVoteRepository,
	tx contract.ITransactor,
	session usecasecontract.ISessionResolver,
	uuidgen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	perPage int,
) *PostUseCaseImpl {
	if perPage < 1 {
		perPage = 10
	}
	return &PostUseCaseImpl{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		voteRepo:    voteRepo,
		tx:          tx,
		session:     session,
		uuidgen:     uuidgen,
		logger:      logger,
		perPage:     perPage,
	}
}

// check if PostUseCaseImpl implements the IPostUseCase
var _ usecasecontract.IPostUseCase = (*PostUseCaseImpl)(nil)

func (uc *PostUseCaseImpl) SetPostCache(cache contract.IPostCache) {
	uc.postCache = cache
}

func postsListCacheKey(gen int64, page, pageSize int) string {
	return fmt.Sprintf("posts:list:g=%d:p=%d:s=%d", gen, page, pageSize)
}

// CreatePost stores a new post authored by the caller and returns its ID.
func (uc *PostUseCaseImpl) CreatePost(ctx context.Context, title, content string) (string, entity.ActionStatus, error) {
	author, ok := uc.session.Nickname(ctx)
	if !ok || author == "" {
		return "", entity.StatusUnauthorized, nil
	}
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(content) == "" {
		return "", "", fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}

	now := time.Now()
	post := &entity.Post{
		ID:        uc.uuidgen.NewUUID(),
		Title:     title,
		Content:   content,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.postRepo.CreatePost(ctx, post); err != nil {
		uc.logger.Errorf("failed to create post: %v", err)
		return "", "", fmt.Errorf("failed to create post: %w", err)
	}

	uc.invalidateLists(ctx)
	return post.ID, entity.StatusSuccess, nil
}

// GetPostByID returns a post and counts the read as a view.
func (uc *PostUseCaseImpl) GetPostByID(ctx context.Context, postID string) (*entity.Post, error) {
	post, err := uc.postRepo.IncrementViews(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// ModifyPost replaces title and content of a post the caller wrote.
func (uc *PostUseCaseImpl) ModifyPost(ctx context.Context, postID, title, content string) (entity.ActionStatus, error) {
	author, ok := uc.session.Nickname(ctx)
	if !ok || author == "" {
		return entity.StatusUnauthorized, nil
	}
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}

	updated, err := uc.postRepo.UpdatePostByAuthor(ctx, postID, author, title, content)
	if err != nil {
		uc.logger.Errorf("failed to update post %s: %v", postID, err)
		return "", fmt.Errorf("failed to update post: %w", err)
	}
	if !updated {
		return entity.StatusNotFound, nil
	}

	uc.invalidateLists(ctx)
	return entity.StatusSuccess, nil
}

// DeletePost removes a post the caller wrote together with its votes and comments.
func (uc *PostUseCaseImpl) DeletePost(ctx context.Context, postID string) (entity.ActionStatus, error) {
	author, ok := uc.session.Nickname(ctx)
	if !ok || author == "" {
		return entity.StatusUnauthorized, nil
	}

	status := entity.StatusNotFound
	err := uc.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		status = entity.StatusNotFound
		deleted, err := uc.postRepo.DeletePostByAuthor(txCtx, postID, author)
		if err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}
		if !deleted {
			return nil
		}
		if _, err := uc.voteRepo.DeleteByPostID(txCtx, postID); err != nil {
			return fmt.Errorf("failed to delete votes of post: %w", err)
		}
		if _, err := uc.commentRepo.DeleteByPostID(txCtx, postID); err != nil {
			return fmt.Errorf("failed to delete comments of post: %w", err)
		}
		status = entity.StatusSuccess
		return nil
	})
	if err != nil {
		uc.logger.Errorf("failed to delete post %s: %v", postID, err)
		return "", err
	}

	if status.OK() {
		uc.invalidateLists(ctx)
	}
	return status, nil
}

// GetPostsByPagination returns one page of posts, newest first.
func (uc *PostUseCaseImpl) GetPostsByPagination(ctx context.Context, page int) (*entity.Page[entity.Post], error) {
	if page < 1 {
		page = 1
	}
	// The generation is read before the query so a page built from rows an
	// invalidation has since replaced lands under a dead key.
	var key string
	if uc.postCache != nil {
		if gen, err := uc.postCache.ListGeneration(ctx); err != nil {
			uc.logger.Warningf("cache error: posts list generation err=%v", err)
		} else {
			key = postsListCacheKey(gen, page, uc.perPage)
		}
	}

	// Try cache first
	if key != "" {
		t0 := time.Now()
		cached, found, err := uc.postCache.GetPostsPage(ctx, key)
		elapsed := time.Since(t0)
		switch {
		case err == nil && found && cached != nil:
			metrics.IncListHit()
			metrics.AddHitDuration(elapsed.Seconds())
			uc.logger.Debugf("cache hit: posts list key=%s took=%s", key, elapsed)
			return entity.NewPage(cached.Posts, cached.Total, page, uc.perPage), nil
		case err == nil:
			metrics.IncListMiss()
			metrics.AddMissDuration(elapsed.Seconds())
			uc.logger.Debugf("cache miss: posts list key=%s took=%s", key, elapsed)
		default:
			uc.logger.Warningf("cache error: posts list key=%s err=%v took=%s", key, err, elapsed)
		}
	}

	posts, total, err := uc.postRepo.GetPosts(ctx, contract.Pagination{Page: page, PageSize: uc.perPage})
	if err != nil {
		uc.logger.Errorf("failed to get posts: %v", err)
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}

	items := make([]entity.Post, 0, len(posts))
	for _, p := range posts {
		items = append(items, *p)
	}

	if key != "" {
		if err := uc.postCache.SetPostsPage(ctx, key, &contract.CachedPostsPage{Posts: items, Total: total}); err != nil {
			uc.logger.Warningf("cache set failed: posts list key=%s err=%v", key, err)
		}
	}
	return entity.NewPage(items, total, page, uc.perPage), nil
}

func (uc *PostUseCaseImpl) invalidateLists(ctx context.Context) {
	if uc.postCache == nil {
		return
	}
	if err := uc.postCache.InvalidatePostLists(ctx); err != nil {
		uc.logger.Warningf("failed to invalidate post lists: %v", err)
	}
}
