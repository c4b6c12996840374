package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	handler "github.com/mikiasgoitom/Postboard/internal/handler/http"
	dto "github.com/mikiasgoitom/Postboard/internal/handler/http/dto"
	mocks "github.com/mikiasgoitom/Postboard/internal/handler/http/mocks"
	"github.com/mikiasgoitom/Postboard/internal/infrastructure/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
	os.Exit(m.Run())
}

func setupRouter(h handler.UserHandlerInterface) *gin.Engine {
	r := gin.New()
	r.POST("/users", h.SignUp)
	r.GET("/users/duplicate", h.CheckDuplicate)
	return r
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignUp(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := doJSON(r, http.MethodPost, "/users", dto.SignUpRequest{
		Email:    "alice@example.com",
		Nickname: "alice",
		Password: "Password123!",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Nickname)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestSignUp_ValidationFails(t *testing.T) {
	r := setupRouter(handler.NewUserHandler(mocks.NewMockUserUsecase()))

	w := doJSON(r, http.MethodPost, "/users", dto.SignUpRequest{
		Email:    "alice@example.com",
		Password: "password",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'Nickname' failed on the 'required' tag")
	assert.Contains(t, w.Body.String(), "Field validation for 'Password' failed on the 'containsuppercase' tag")
}

func TestSignUp_NicknameLengthInCharacters(t *testing.T) {
	r := setupRouter(handler.NewUserHandler(mocks.NewMockUserUsecase()))

	w := doJSON(r, http.MethodPost, "/users", dto.SignUpRequest{
		Email:    "minji@example.com",
		Nickname: "가나다라마바사아자차카",
		Password: "Password123!",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/users", dto.SignUpRequest{
		Email:    "minji@example.com",
		Nickname: strings.Repeat("가", 31),
		Password: "Password123!",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'Nickname' failed on the 'nickname' tag")

	w = doJSON(r, http.MethodPost, "/users", dto.SignUpRequest{
		Email:    "minji@example.com",
		Nickname: "민 지",
		Password: "Password123!",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignUp_Duplicate(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldReturnDuplicate = true
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := doJSON(r, http.MethodPost, "/users", dto.SignUpRequest{
		Email:    "alice@example.com",
		Nickname: "alice",
		Password: "Password123!",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignUp_InternalError(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailSignUp = true
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := doJSON(r, http.MethodPost, "/users", dto.SignUpRequest{
		Email:    "alice@example.com",
		Nickname: "alice",
		Password: "Password123!",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "user creation failed")
}

func TestCheckDuplicate(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.Taken["nickname:alice"] = true
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := doJSON(r, http.MethodGet, "/users/duplicate?field=nickname&value=alice", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"field":"nickname","duplicate":true}`, w.Body.String())

	w = doJSON(r, http.MethodGet, "/users/duplicate?field=email&value=bob@example.com", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"field":"email","duplicate":false}`, w.Body.String())

	w = doJSON(r, http.MethodGet, "/users/duplicate?field=password&value=x", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
