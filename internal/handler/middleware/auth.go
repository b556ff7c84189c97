package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"laundromat-api/internal/pkg/cookie"
	"laundromat-api/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenValidator checks access tokens issued by the identity provider.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const (
	ctxUserIDKey = "user_id"
	ctxClaimsKey = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxClaimsKey, map[string]any{
			"user_id": claims.UserID.String(),
			"email":   claims.Email,
		})
		c.Next()
	}
}

// extractToken prefers the session cookie over the Authorization header.
// Browsers cannot set headers on websocket upgrades, so the cookie is the
// only carrier there.
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
