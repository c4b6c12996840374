package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Postboard/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Postboard/internal/usecase/contract"
)

type VoteHandler struct {
	voteUsecase usecasecontract.IVoteUseCase
}

func NewVoteHandler(voteUsecase usecasecontract.IVoteUseCase) *VoteHandler {
	return &VoteHandler{
		voteUsecase: voteUsecase,
	}
}

// VotePostHandler toggles the caller's like or dislike on a post. Sending the
// same vote twice retracts it.
func (h *VoteHandler) VotePostHandler(c *gin.Context) {
	var req dto.VoteRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	postID := c.Param("postID")

	outcome, err := h.voteUsecase.ToggleVote(c.Request.Context(), postID, *req.IsLike)
	if err != nil {
		UseCaseErrorHandler(c, err)
		return
	}
	if StatusHandler(c, outcome.Status, "Post") {
		return
	}
	SuccessHandler(c, http.StatusOK, dto.VoteResponse{
		PostID:   postID,
		Vote:     outcome.Transition.To.String(),
		Likes:    outcome.Likes,
		Dislikes: outcome.Dislikes,
	})
}

// GetUserVoteHandler returns "liked", "disliked" or "none".
func (h *VoteHandler) GetUserVoteHandler(c *gin.Context) {
	postID := c.Param("postID")
	state, status, err := h.voteUsecase.GetUserVote(c.Request.Context(), postID)
	if err != nil {
		UseCaseErrorHandler(c, err)
		return
	}
	if StatusHandler(c, status, "Post") {
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UserVoteResponse{PostID: postID, Vote: state.String()})
}
