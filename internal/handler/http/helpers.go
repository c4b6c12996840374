package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Postboard/internal/domain/contract"
	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	"github.com/mikiasgoitom/Postboard/internal/handler/http/dto"
	"github.com/mikiasgoitom/Postboard/internal/usecase"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// StatusHandler writes the response for a non-success action status and
// reports whether it did.
func StatusHandler(c *gin.Context, status entity.ActionStatus, what string) bool {
	switch status {
	case entity.StatusSuccess:
		return false
	case entity.StatusUnauthorized:
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
	case entity.StatusNotFound:
		ErrorHandler(c, http.StatusNotFound, what+" not found")
	default:
		ErrorHandler(c, http.StatusInternalServerError, "unexpected status "+string(status))
	}
	return true
}

// UseCaseErrorHandler maps use-case errors to HTTP status codes.
func UseCaseErrorHandler(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrInvalidField):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrDuplicateUser):
		ErrorHandler(c, http.StatusConflict, err.Error())
	case errors.Is(err, usecase.ErrFileTooLarge):
		ErrorHandler(c, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, usecase.ErrUnsupportedMediaType):
		ErrorHandler(c, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, contract.ErrPostNotFound):
		ErrorHandler(c, http.StatusNotFound, "Post not found")
	case errors.Is(err, contract.ErrMediaNotFound):
		ErrorHandler(c, http.StatusNotFound, "File not found")
	default:
		ErrorHandler(c, http.StatusInternalServerError, "Internal server error")
	}
}

// pageParam reads ?page=, defaulting to 1. Pages below 1 read as 1.
func pageParam(c *gin.Context) (int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid page number")
		return 0, false
	}
	if page < 1 {
		page = 1
	}
	return page, true
}
