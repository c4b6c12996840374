package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Postboard/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
)

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	commentUseCase usecasecontract.ICommentUseCase
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentUseCase usecasecontract.ICommentUseCase) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
	}
}

// CreateComment handles POST /posts/:postID/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	status, err := h.commentUseCase.CreateComment(c.Request.Context(), c.Param("postID"), req.Content)
	if err != nil {
		UseCaseErrorHandler(c, err)
		return
	}
	if StatusHandler(c, status, "Post") {
		return
	}
	MessageHandler(c, http.StatusCreated, "Comment created successfully")
}

// UpdateComment handles PUT /comments/:commentID
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req dto.CommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	status, err := h.commentUseCase.ModifyComment(c.Request.Context(), c.Param("commentID"), req.Content)
	if err != nil {
		UseCaseErrorHandler(c, err)
		return
	}
	if StatusHandler(c, status, "Comment") {
		return
	}
	MessageHandler(c, http.StatusOK, "Comment updated successfully")
}

// DeleteComment handles DELETE /comments/:commentID
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	status, err := h.commentUseCase.DeleteComment(c.Request.Context(), c.Param("commentID"))
	if err != nil {
		UseCaseErrorHandler(c, err)
		return
	}
	if StatusHandler(c, status, "Comment") {
		return
	}
	MessageHandler(c, http.StatusOK, "Comment deleted successfully")
}

// GetPostComments handles GET /posts/:postID/comments
func (h *CommentHandler) GetPostComments(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	result, err := h.commentUseCase.GetCommentsByPagination(c.Request.Context(), c.Param("postID"), page)
	if err != nil {
		UseCaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPageResponse(result, dto.ToCommentResponse))
}
