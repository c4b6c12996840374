package usecasecontract

import (
	"context"
	"io"

	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
)

type IUploadUseCase interface {
	UploadFile(ctx context.Context, fileName string, r io.Reader, size int64) (string, entity.ActionStatus, error)
	OpenFile(ctx context.Context, fileID string) (*entity.Media, io.ReadCloser, error)
}
