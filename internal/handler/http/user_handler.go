package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	"github.com/mikiasgoitom/Postboard/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	SignUp(*gin.Context)
	CheckDuplicate(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// SignUp handles account registration
func (h *UserHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.SignUp(c.Request.Context(), req.Email, req.Nickname, req.Name, req.Password)
	if err != nil {
		UseCaseErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(*user))
}

// CheckDuplicate reports whether a nickname or email is taken
func (h *UserHandler) CheckDuplicate(c *gin.Context) {
	var q dto.DuplicateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	taken, err := h.userUsecase.CheckDuplicate(c.Request.Context(), entity.DuplicateField(q.Field), q.Value)
	if err != nil {
		UseCaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.DuplicateResponse{Field: q.Field, Duplicate: taken})
}
