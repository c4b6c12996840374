package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Postboard/internal/domain/contract"
	"github.com/mikiasgoitom/Postboard/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
)

type PostHandler struct {
	postUsecase usecasecontract.IPostUseCase
}

func NewPostHandler(postUsecase usecasecontract.IPostUseCase) *PostHandler {
	return &PostHandler{postUsecase: postUsecase}
}

// CreatePostHandler handles creating a post by the signed-in user
func (h *PostHandler) CreatePostHandler(c *gin.Context) {
	var req dto.PostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	id, status, err := h.postUsecase.CreatePost(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		UseCaseErrorHandler(c, err)
		return
	}
	if StatusHandler(c, status, "Post") {
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.IDResponse{ID: id})
}

// GetPostHandler returns one post and counts the view
func (h *PostHandler) GetPostHandler(c *gin.Context) {
	post, err := h.postUsecase.GetPostByID(c.Request.Context(), c.Param("postID"))
	if err != nil {
		if errors.Is(err, contract.ErrPostNotFound) {
			ErrorHandler(c, http.StatusNotFound, "Post not found")
			return
		}
		UseCaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPostResponse(*post))
}

func (h *PostHandler) UpdatePostHandler(c *gin.Context) {
	var req dto.PostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	status, err := h.postUsecase.ModifyPost(c.Request.Context(), c.Param("postID"), req.Title, req.Content)
	if err != nil {
		UseCaseErrorHandler(c, err)
		return
	}
	if StatusHandler(c, status, "Post") {
		return
	}
	MessageHandler(c, http.StatusOK, "Post updated successfully")
}

// DeletePostHandler removes the post with its comments and votes
func (h *PostHandler) DeletePostHandler(c *gin.Context) {
	status, err := h.postUsecase.DeletePost(c.Request.Context(), c.Param("postID"))
	if err != nil {
		UseCaseErrorHandler(c, err)
		return
	}
	if StatusHandler(c, status, "Post") {
		return
	}
	MessageHandler(c, http.StatusOK, "Post deleted successfully")
}

// GetPostsHandler lists posts newest first, one page at a time
func (h *PostHandler) GetPostsHandler(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}

	result, err := h.postUsecase.GetPostsByPagination(c.Request.Context(), page)
	if err != nil {
		UseCaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPageResponse(result, dto.ToPostResponse))
}
