package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/airportservice/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const requestIDKey = "request_id"

// RequestID reuses X-Request-ID from the client or generates one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(requestIDKey)
}

func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		line := fmt.Sprintf("request_id=%s %s %s - %d (%s)",
			GetRequestID(c), c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		switch {
		case status >= 500:
			log.Error("HTTP", fmt.Sprintf("%s %s", line, c.Errors.String()))
		case status >= 400:
			log.Warn("HTTP", line)
		default:
			log.Info("HTTP", line)
		}
	}
}

func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("PANIC", fmt.Sprintf("request_id=%s recovered from panic: %v", GetRequestID(c), recovered))
		abortError(c, http.StatusInternalServerError, "internal_error", "internal server error")
	})
}

// RateLimit shares one token bucket across all clients.
func RateLimit(log *logger.Logger, perSecond int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(perSecond), perSecond)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			log.Warn("RATE_LIMIT", fmt.Sprintf("rate limit exceeded for IP: %s", c.ClientIP()))
			c.Header("Retry-After", "1")
			abortError(c, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded")
			return
		}
		c.Next()
	}
}

func abortError(c *gin.Context, status int, code, msg string) {
	body := gin.H{"error": msg, "code": code}
	if rid := GetRequestID(c); rid != "" {
		body["request_id"] = rid
	}
	c.AbortWithStatusJSON(status, body)
}
