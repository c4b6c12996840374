package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Postboard/internal/domain/contract"
	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
)

type MockPostUsecase struct {
	ShouldFail bool
	Status     entity.ActionStatus
	Posts      map[string]entity.Post
	LastPage   int
}

var _ usecasecontract.IPostUseCase = (*MockPostUsecase)(nil)

func NewMockPostUsecase() *MockPostUsecase {
	return &MockPostUsecase{Status: entity.StatusSuccess, Posts: map[string]entity.Post{}}
}

func (m *MockPostUsecase) CreatePost(ctx context.Context, title, content string) (string, entity.ActionStatus, error) {
	if m.ShouldFail {
		return "", "", errors.New("create failed")
	}
	if m.Status != entity.StatusSuccess {
		return "", m.Status, nil
	}
	return "new-post-id", entity.StatusSuccess, nil
}

func (m *MockPostUsecase) GetPostByID(ctx context.Context, postID string) (*entity.Post, error) {
	if m.ShouldFail {
		return nil, errors.New("read failed")
	}
	p, ok := m.Posts[postID]
	if !ok {
		return nil, contract.ErrPostNotFound
	}
	return &p, nil
}

func (m *MockPostUsecase) ModifyPost(ctx context.Context, postID, title, content string) (entity.ActionStatus, error) {
	if m.ShouldFail {
		return "", errors.New("update failed")
	}
	return m.Status, nil
}

func (m *MockPostUsecase) DeletePost(ctx context.Context, postID string) (entity.ActionStatus, error) {
	if m.ShouldFail {
		return "", errors.New("delete failed")
	}
	return m.Status, nil
}

func (m *MockPostUsecase) GetPostsByPagination(ctx context.Context, page int) (*entity.Page[entity.Post], error) {
	if m.ShouldFail {
		return nil, errors.New("list failed")
	}
	m.LastPage = page
	items := make([]entity.Post, 0, len(m.Posts))
	for _, p := range m.Posts {
		items = append(items, p)
	}
	return entity.NewPage(items, int64(len(items)), page, 10), nil
}
