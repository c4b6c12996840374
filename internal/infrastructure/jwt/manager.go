package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
)

var ErrInvalidToken = errors.New("invalid token")

// JWTManager signs and verifies HS256 access tokens.
type JWTManager struct {
	secret    []byte
	accessTTL time.Duration
	issuer    string
}

func NewJWTManager(secret string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), accessTTL: accessTTL, issuer: "postboard"}
}

// GenerateAccessToken issues a token whose subject is the user id.
func (m *JWTManager) GenerateAccessToken(userID, nickname string) (string, error) {
	now := time.Now()
	claims := entity.Claims{
		UserID:   userID,
		Nickname: nickname,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature, algorithm and expiry.
func (m *JWTManager) VerifyToken(tokenStr string) (*entity.Claims, error) {
	claims := &entity.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(m.issuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
