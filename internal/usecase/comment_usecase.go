package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mikiasgoitom/Postboard/internal/domain/contract"
	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
)

const maxCommentLength = 2000

type commentUseCase struct {
	commentRepo contract.ICommentRepository
	postRepo    contract.IPostRepository
	session     usecasecontract.ISessionResolver
	uuidgen     contract.IUUIDGenerator
	logger      usecasecontract.IAppLogger
	perPage     int
}

func NewCommentUseCase(
	commentRepo contract.ICommentRepository,
	postRepo contract.IPostRepository,
	session usecasecontract.ISessionResolver,
	uuidgen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	perPage int,
) usecasecontract.ICommentUseCase {
	if perPage < 1 {
		perPage = 10
	}
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		session:     session,
		uuidgen:     uuidgen,
		logger:      logger,
		perPage:     perPage,
	}
}

func (uc *commentUseCase) CreateComment(ctx context.Context, postID, content string) (entity.ActionStatus, error) {
	author, ok := uc.session.Nickname(ctx)
	if !ok || author == "" {
		return entity.StatusUnauthorized, nil
	}
	content, err := uc.validateContent(content)
	if err != nil {
		return "", err
	}

	if _, err := uc.postRepo.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, contract.ErrPostNotFound) {
			return entity.StatusNotFound, nil
		}
		return "", fmt.Errorf("failed to look up post: %w", err)
	}

	now := time.Now()
	comment := &entity.Comment{
		ID:        uc.uuidgen.NewUUID(),
		PostID:    postID,
		Author:    author,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Errorf("failed to create comment on post %s: %v", postID, err)
		return "", fmt.Errorf("failed to create comment: %w", err)
	}
	return entity.StatusSuccess, nil
}

func (uc *commentUseCase) ModifyComment(ctx context.Context, commentID, content string) (entity.ActionStatus, error) {
	author, ok := uc.session.Nickname(ctx)
	if !ok || author == "" {
		return entity.StatusUnauthorized, nil
	}
	content, err := uc.validateContent(content)
	if err != nil {
		return "", err
	}

	updated, err := uc.commentRepo.UpdateByAuthor(ctx, commentID, author, content)
	if err != nil {
		return "", fmt.Errorf("failed to update comment: %w", err)
	}
	if !updated {
		return entity.StatusNotFound, nil
	}
	return entity.StatusSuccess, nil
}

func (uc *commentUseCase) DeleteComment(ctx context.Context, commentID string) (entity.ActionStatus, error) {
	author, ok := uc.session.Nickname(ctx)
	if !ok || author == "" {
		return entity.StatusUnauthorized, nil
	}

	deleted, err := uc.commentRepo.DeleteByAuthor(ctx, commentID, author)
	if err != nil {
		return "", fmt.Errorf("failed to delete comment: %w", err)
	}
	if !deleted {
		return entity.StatusNotFound, nil
	}
	return entity.StatusSuccess, nil
}

// GetCommentsByPagination lists a post's comments, oldest first.
func (uc *commentUseCase) GetCommentsByPagination(ctx context.Context, postID string, page int) (*entity.Page[entity.Comment], error) {
	if page < 1 {
		page = 1
	}
	comments, total, err := uc.commentRepo.GetByPostID(ctx, postID, contract.Pagination{Page: page, PageSize: uc.perPage})
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	items := make([]entity.Comment, 0, len(comments))
	for _, c := range comments {
		items = append(items, *c)
	}
	return entity.NewPage(items, total, page, uc.perPage), nil
}

func (uc *commentUseCase) validateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("%w: comment content cannot be empty", ErrInvalidInput)
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return "", fmt.Errorf("%w: comment content cannot exceed %d characters", ErrInvalidInput, maxCommentLength)
	}
	return content, nil
}
