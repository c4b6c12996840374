package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
)

type IPostUseCase interface {
	CreatePost(ctx context.Context, title, content string) (string, entity.ActionStatus, error)
	GetPostByID(ctx context.Context, postID string) (*entity.Post, error)
	ModifyPost(ctx context.Context, postID, title, content string) (entity.ActionStatus, error)
	DeletePost(ctx context.Context, postID string) (entity.ActionStatus, error)
	GetPostsByPagination(ctx context.Context, page int) (*entity.Page[entity.Post], error)
}
