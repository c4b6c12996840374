package jwt

import (
	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	"github.com/mikiasgoitom/Postboard/internal/usecase"
)

// JWTServiceAdapter adapts JWTManager to the usecase.JWTService interface.
type JWTServiceAdapter struct {
	mgr *JWTManager
}

// NewJWTService creates a new usecase.JWTService from JWTManager
func NewJWTService(mgr *JWTManager) usecase.JWTService {
	return &JWTServiceAdapter{mgr: mgr}
}

// GenerateAccessToken issues an access token for a user.
func (a *JWTServiceAdapter) GenerateAccessToken(userID, nickname string) (string, error) {
	return a.mgr.GenerateAccessToken(userID, nickname)
}

// ParseAccessToken validates an access token and returns Claims.
func (a *JWTServiceAdapter) ParseAccessToken(tokenStr string) (*entity.Claims, error) {
	return a.mgr.VerifyToken(tokenStr)
}
