package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
)

type ICommentUseCase interface {
	CreateComment(ctx context.Context, postID, content string) (entity.ActionStatus, error)
	ModifyComment(ctx context.Context, commentID, content string) (entity.ActionStatus, error)
	DeleteComment(ctx context.Context, commentID string) (entity.ActionStatus, error)
	GetCommentsByPagination(ctx context.Context, postID string, page int) (*entity.Page[entity.Comment], error)
}
