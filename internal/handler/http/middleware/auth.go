package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Postboard/internal/domain/entity"
	"github.com/mikiasgoitom/Postboard/internal/infrastructure/session"
	"github.com/mikiasgoitom/Postboard/internal/usecase"
)

// OptionalAuth attaches the caller's identity when a valid bearer token is
// present. Anonymous requests pass through; use cases decide what they may do.
func OptionalAuth(jwtService usecase.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.Next()
			return
		}

		claims, err := jwtService.ParseAccessToken(strings.TrimSpace(token))
		if err != nil {
			c.Next()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("nickname", claims.Nickname)
		ctx := session.WithSession(c.Request.Context(), entity.Session{UserID: claims.UserID, Nickname: claims.Nickname})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
