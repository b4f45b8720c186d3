package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kyberbiz/kyberbiz/internal/ratelimit"
)

// Actor identity is injected by the upstream gateway; this service trusts
// the headers and only enforces role capability.
const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"
	HeaderRequestID = "X-Request-ID"

	contextActorIDKey   = "actor_id"
	contextActorRoleKey = "actor_role"

	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
	RoleViewer     = "viewer"
)

func validRole(role string) bool {
	switch role {
	case RoleAdmin, RoleAccountant, RoleViewer:
		return true
	default:
		return false
	}
}

// RequestLogger propagates or generates a request id and logs one line per
// request.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)

		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		}
		if last := c.Errors.Last(); last != nil {
			fields = append(fields, zap.Error(last.Err))
		}
		if c.Writer.Status() >= 500 {
			log.Error("request failed", fields...)
			return
		}
		log.Info("request", fields...)
	}
}

// ActorContext reads the gateway-injected identity. Requests without a
// valid actor are rejected before any handler runs.
func ActorContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := strings.TrimSpace(c.GetHeader(HeaderActorID))
		role := strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderActorRole)))
		if actorID == "" || !validRole(role) {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		c.Set(contextActorIDKey, actorID)
		c.Set(contextActorRoleKey, role)
		c.Next()
	}
}

// PublicRateLimit throttles the unauthenticated surface per client address.
func PublicRateLimit(limiter *ratelimit.PublicLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.Request.Context(), c.ClientIP()) {
			AbortWithError(c, ErrRateLimited)
			return
		}
		c.Next()
	}
}

// RequireRole gates a route to the listed roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(c *gin.Context) {
		role := c.GetString(contextActorRoleKey)
		if _, ok := allowed[role]; !ok {
			AbortWithError(c, ErrForbidden)
			return
		}
		c.Next()
	}
}
