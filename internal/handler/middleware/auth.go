package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"loyaltybot/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxBusinessIDKey = "business_id"

// PartnerAuthMiddleware guards the partner API with bearer tokens issued by
// the token exchange endpoint.
type PartnerAuthMiddleware struct {
	tokens *jwt.Service
}

func NewPartnerAuthMiddleware(tokens *jwt.Service) *PartnerAuthMiddleware {
	return &PartnerAuthMiddleware{tokens: tokens}
}

func (m *PartnerAuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in partner auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxBusinessIDKey, claims.BusinessID)
		c.Next()
	}
}

func GetBusinessID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxBusinessIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
