package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// WriteRateLimitMiddleware applies a shared token bucket to mutating
// requests. Pasted-HTML writes are cheap to issue and expensive to store, so
// the bucket sits in front of create/update/delete only.
func WriteRateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete:
			if !limiter.Allow() {
				c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
					"error": "too many write requests, slow down",
				})
				return
			}
		}
		c.Next()
	}
}
