package contract

import (
	"context"

	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
)

type ICommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	UpdateByAuthor(ctx context.Context, commentID, author, content string) (bool, error)
	DeleteByAuthor(ctx context.Context, commentID, author string) (bool, error)
	GetByPostID(ctx context.Context, postID string, pagination Pagination) ([]*entity.Comment, int64, error)
	DeleteByPostID(ctx context.Context, postID string) (int64, error)
}
