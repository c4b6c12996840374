package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Postboard/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
)

// multipartOverhead leaves room for boundaries and headers around the file.
const multipartOverhead = 1 << 20

type UploadHandler struct {
	uploadUsecase usecasecontract.IUploadUseCase
	maxBytes      int64
}

func NewUploadHandler(uploadUsecase usecasecontract.IUploadUseCase, maxBytes int64) *UploadHandler {
	return &UploadHandler{uploadUsecase: uploadUsecase, maxBytes: maxBytes}
}

// UploadFileHandler accepts a multipart form with an image in field "file".
func (h *UploadHandler) UploadFileHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ErrorHandler(c, http.StatusRequestEntityTooLarge, "file exceeds the upload size limit")
			return
		}
		ErrorHandler(c, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, fmt.Sprintf("failed to read upload: %v", err))
		return
	}
	defer f.Close()

	url, status, err := h.uploadUsecase.UploadFile(c.Request.Context(), fh.Filename, f, fh.Size)
	if err != nil {
		UseCaseErrorHandler(c, err)
		return
	}
	if StatusHandler(c, status, "File") {
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.URLResponse{URL: url})
}

// GetFileHandler streams a stored upload.
func (h *UploadHandler) GetFileHandler(c *gin.Context) {
	media, rc, err := h.uploadUsecase.OpenFile(c.Request.Context(), c.Param("fileID"))
	if err != nil {
		UseCaseErrorHandler(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, media.Size, media.ContentType, rc, map[string]string{
		"Cache-Control":           "public, max-age=86400",
		"Content-Disposition":     fmt.Sprintf("inline; filename=%q", media.FileName),
		"X-Content-Type-Options":  "nosniff",
		"Content-Security-Policy": "default-src 'none'; sandbox",
	})
}
