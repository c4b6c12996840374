package mocks

import (
	"bytes"
	"context"
	"io"

	"github.com/mikiasgoitom/Postboard/internal/domain/contract"
	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
)

type MockUploadUsecase struct {
	Err      error
	Status   entity.ActionStatus
	Files    map[string][]byte
	LastName string
}

var _ usecasecontract.IUploadUseCase = (*MockUploadUsecase)(nil)

func NewMockUploadUsecase() *MockUploadUsecase {
	return &MockUploadUsecase{Status: entity.StatusSuccess, Files: map[string][]byte{}}
}

func (m *MockUploadUsecase) UploadFile(ctx context.Context, fileName string, r io.Reader, size int64) (string, entity.ActionStatus, error) {
	if m.Err != nil {
		return "", "", m.Err
	}
	if m.Status != entity.StatusSuccess {
		return "", m.Status, nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", "", err
	}
	m.LastName = fileName
	m.Files["f1"] = b
	return "http://localhost:8080/api/v1/files/f1", entity.StatusSuccess, nil
}

func (m *MockUploadUsecase) OpenFile(ctx context.Context, fileID string) (*entity.Media, io.ReadCloser, error) {
	if m.Err != nil {
		return nil, nil, m.Err
	}
	b, ok := m.Files[fileID]
	if !ok {
		return nil, nil, contract.ErrMediaNotFound
	}
	media := &entity.Media{ID: fileID, FileName: "cat.png", ContentType: "image/png", Size: int64(len(b))}
	return media, io.NopCloser(bytes.NewReader(b)), nil
}
