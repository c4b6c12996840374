package usecase

import (
	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
)

// JWTService defines the interface for JWT operations.
type JWTService interface {
	GenerateAccessToken(userID, nickname string) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
}
