package middleware

import (
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/didip/tollbooth_gin"
	"github.com/gin-gonic/gin"
)

// RateLimiter rejects clients that exceed lmt with 429.
func RateLimiter(lmt *limiter.Limiter) gin.HandlerFunc {
	return tollbooth_gin.LimitHandler(lmt)
}
