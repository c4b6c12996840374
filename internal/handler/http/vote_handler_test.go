package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	handler "github.com/mikiasgoitom/Postboard/internal/handler/http"
	dto "github.com/mikiasgoitom/Postboard/internal/handler/http/dto"
	mocks "github.com/mikiasgoitom/Postboard/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupVoteRouter(m *mocks.MockVoteUsecase) *gin.Engine {
	h := handler.NewVoteHandler(m)
	r := gin.New()
	r.POST("/posts/:postID/vote", h.VotePostHandler)
	r.GET("/posts/:postID/vote", h.GetUserVoteHandler)
	return r
}

func vote(t *testing.T, r *gin.Engine, isLike bool) dto.VoteResponse {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/posts/p1/vote", map[string]bool{"is_like": isLike})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.VoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestVotePostHandler_Toggle(t *testing.T) {
	m := mocks.NewMockVoteUsecase()
	r := setupVoteRouter(m)

	resp := vote(t, r, true)
	assert.Equal(t, "liked", resp.Vote)
	assert.Equal(t, 1, resp.Likes)

	resp = vote(t, r, false)
	assert.Equal(t, "disliked", resp.Vote)
	assert.Equal(t, 0, resp.Likes)
	assert.Equal(t, 1, resp.Dislikes)

	resp = vote(t, r, false)
	assert.Equal(t, "none", resp.Vote)
	assert.Equal(t, 0, resp.Dislikes)
}

func TestVotePostHandler_Errors(t *testing.T) {
	m := mocks.NewMockVoteUsecase()
	r := setupVoteRouter(m)

	w := doJSON(r, http.MethodPost, "/posts/p1/vote", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	m.Status = entity.StatusUnauthorized
	w = doJSON(r, http.MethodPost, "/posts/p1/vote", map[string]bool{"is_like": true})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	m.Status = entity.StatusNotFound
	w = doJSON(r, http.MethodPost, "/posts/p1/vote", map[string]bool{"is_like": true})
	assert.Equal(t, http.StatusNotFound, w.Code)

	m.ShouldFail = true
	w = doJSON(r, http.MethodPost, "/posts/p1/vote", map[string]bool{"is_like": true})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetUserVoteHandler(t *testing.T) {
	m := mocks.NewMockVoteUsecase()
	m.State = entity.VoteStateDisliked
	r := setupVoteRouter(m)

	w := doJSON(r, http.MethodGet, "/posts/p1/vote", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"post_id":"p1","vote":"disliked"}`, w.Body.String())

	m.Status = entity.StatusUnauthorized
	w = doJSON(r, http.MethodGet, "/posts/p1/vote", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
