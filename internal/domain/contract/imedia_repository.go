package contract

import (
	"context"
	"io"

	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
)

// IMediaRepository defines the interface for media metadata persistence.
type IMediaRepository interface {
	CreateMedia(ctx context.Context, media *entity.Media) error
	GetMediaByID(ctx context.Context, mediaID string) (*entity.Media, error)
}

// IFileStorage stores the bytes of uploaded files.
type IFileStorage interface {
	Upload(ctx context.Context, fileID, name string, r io.Reader) (int64, error)
	Open(ctx context.Context, fileID string) (io.ReadCloser, error)
	Delete(ctx context.Context, fileID string) error
}
