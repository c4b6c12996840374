package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/mikiasgoitom/Postboard/internal/domain/contract"
	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
)

// sniffLen is how much of the upload is inspected to detect its type.
const sniffLen = 3072

// imageTypes are the raster formats served back from the API origin.
// SVG is left out since it can carry script.
var imageTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

func isAllowedImage(mtype *mimetype.MIME) bool {
	for _, t := range imageTypes {
		if mtype.Is(t) {
			return true
		}
	}
	return false
}

type UploadUsecase struct {
	mediaRepo contract.IMediaRepository
	storage   contract.IFileStorage
	session   usecasecontract.ISessionResolver
	uuidgen   contract.IUUIDGenerator
	logger    usecasecontract.IAppLogger
	baseURL   string
	maxBytes  int64
}

func NewUploadUsecase(
	mediaRepo contract.IMediaRepository,
	storage contract.IFileStorage,
	session usecasecontract.ISessionResolver,
	uuidgen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
) *UploadUsecase {
	return &UploadUsecase{
		mediaRepo: mediaRepo,
		storage:   storage,
		session:   session,
		uuidgen:   uuidgen,
		logger:    logger,
		baseURL:   strings.TrimRight(cfg.GetAppBaseURL(), "/"),
		maxBytes:  cfg.GetMaxUploadBytes(),
	}
}

var _ usecasecontract.IUploadUseCase = (*UploadUsecase)(nil)

// UploadFile stores an image under images/<name> and returns its public URL.
// size is the length announced by the client; the stream is still capped.
func (u *UploadUsecase) UploadFile(ctx context.Context, fileName string, r io.Reader, size int64) (string, entity.ActionStatus, error) {
	userID, ok := u.session.UserID(ctx)
	if !ok || userID == "" {
		return "", entity.StatusUnauthorized, nil
	}
	if size > u.maxBytes {
		return "", "", ErrFileTooLarge
	}
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "" || name == "." || name == "/" {
		return "", "", fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", "", fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return "", "", fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}
	mtype := mimetype.Detect(head)
	if !isAllowedImage(mtype) {
		return "", "", ErrUnsupportedMediaType
	}

	fileID := u.uuidgen.NewUUID()
	storedName := "images/" + name
	body := io.LimitReader(io.MultiReader(bytes.NewReader(head), r), u.maxBytes+1)
	written, err := u.storage.Upload(ctx, fileID, storedName, body)
	if err != nil {
		u.logger.Errorf("failed to store upload %s: %v", storedName, err)
		return "", "", fmt.Errorf("failed to store file: %w", err)
	}
	if written > u.maxBytes {
		if err := u.storage.Delete(ctx, fileID); err != nil {
			u.logger.Warningf("failed to remove oversized upload %s: %v", fileID, err)
		}
		return "", "", ErrFileTooLarge
	}

	media := &entity.Media{
		ID:          fileID,
		FileName:    name,
		StoredName:  storedName,
		ContentType: mtype.String(),
		Size:        written,
		URL:         u.baseURL + "/api/v1/files/" + fileID,
		UploadedBy:  userID,
		CreatedAt:   time.Now(),
	}
	if err := u.mediaRepo.CreateMedia(ctx, media); err != nil {
		if delErr := u.storage.Delete(ctx, fileID); delErr != nil {
			u.logger.Warningf("failed to remove orphaned upload %s: %v", fileID, delErr)
		}
		return "", "", fmt.Errorf("failed to record upload: %w", err)
	}
	return media.URL, entity.StatusSuccess, nil
}

// OpenFile returns the metadata and a reader over a stored upload. The
// caller closes the reader.
func (u *UploadUsecase) OpenFile(ctx context.Context, fileID string) (*entity.Media, io.ReadCloser, error) {
	media, err := u.mediaRepo.GetMediaByID(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	rc, err := u.storage.Open(ctx, fileID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file %s: %w", fileID, err)
	}
	return media, rc, nil
}
