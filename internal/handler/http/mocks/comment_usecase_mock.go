package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
)

type MockCommentUsecase struct {
	ShouldFail bool
	Status     entity.ActionStatus
	Comments   []entity.Comment
}

var _ usecasecontract.ICommentUseCase = (*MockCommentUsecase)(nil)

func NewMockCommentUsecase() *MockCommentUsecase {
	return &MockCommentUsecase{Status: entity.StatusSuccess}
}

func (m *MockCommentUsecase) CreateComment(ctx context.Context, postID, content string) (entity.ActionStatus, error) {
	if m.ShouldFail {
		return "", errors.New("create failed")
	}
	return m.Status, nil
}

func (m *MockCommentUsecase) ModifyComment(ctx context.Context, commentID, content string) (entity.ActionStatus, error) {
	if m.ShouldFail {
		return "", errors.New("update failed")
	}
	return m.Status, nil
}

func (m *MockCommentUsecase) DeleteComment(ctx context.Context, commentID string) (entity.ActionStatus, error) {
	if m.ShouldFail {
		return "", errors.New("delete failed")
	}
	return m.Status, nil
}

func (m *MockCommentUsecase) GetCommentsByPagination(ctx context.Context, postID string, page int) (*entity.Page[entity.Comment], error) {
	if m.ShouldFail {
		return nil, errors.New("list failed")
	}
	return entity.NewPage(m.Comments, int64(len(m.Comments)), page, 10), nil
}
