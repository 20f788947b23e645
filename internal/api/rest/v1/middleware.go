package v1

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/ratelimit"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "requestID"
	claimsKey    = "claims"
)

// RequestID reuses the X-Request-ID header or generates a new id.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

// RequestLogger logs one line per request, plus the errors handlers attached.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		requestID := ctx.GetString(requestIDKey)
		for _, e := range ctx.Errors {
			log.Error("request error", "request_id", requestID, "error", e.Error())
		}

		args := []any{
			"request_id", requestID,
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", status,
			"latency", time.Since(start).String(),
			"client_ip", ctx.ClientIP(),
		}
		if status >= http.StatusInternalServerError {
			log.Warn(append([]any{"request failed"}, args...)...)
			return
		}
		log.Info(append([]any{"request"}, args...)...)
	}
}

// Recovery turns panics into a 500 JSON response.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		log.Error("panic recovered", "request_id", ctx.GetString(requestIDKey), "error", fmt.Sprint(recovered))
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Error: http.StatusText(http.StatusInternalServerError),
		})
	})
}

// RequireAuth rejects requests without a valid "Authorization: Bearer" token
// and stores the token claims on the context.
func RequireAuth(authService users.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			respondError(ctx, fmt.Errorf("%w: missing bearer token", common.ErrUnauthorized))
			return
		}

		claims, err := authService.Authenticate(ctx, strings.TrimSpace(token))
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.Set(claimsKey, claims)
		ctx.Next()
	}
}

func claimsFrom(ctx *gin.Context) (*users.Claims, bool) {
	v, ok := ctx.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*users.Claims)
	return claims, ok
}

// RateLimit throttles requests per client IP and route. Rejected requests get
// 429 with a Retry-After header in seconds.
func RateLimit(limiter ratelimit.Limiter, log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := ctx.FullPath() + "|" + ctx.ClientIP()
		allowed, retryAfter, err := limiter.Allow(ctx, key)
		if err != nil {
			log.Error("rate limiter unavailable", "error", err.Error())
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, ErrorResponse{
				Error: http.StatusText(http.StatusServiceUnavailable),
			})
			return
		}
		if !allowed {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			ctx.Header("Retry-After", strconv.Itoa(seconds))
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Error: "too many requests"})
			return
		}
		ctx.Next()
	}
}
