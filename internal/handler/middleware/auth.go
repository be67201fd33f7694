package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"gift-commerce/internal/handler/httperr"
	"gift-commerce/internal/pkg/cookie"
	"gift-commerce/internal/pkg/errs"
	"gift-commerce/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const ctxProviderIDKey = "provider_id"

var (
	errMissingToken = errs.New("access token required")
	errInvalidToken = errs.New("invalid or expired token")
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth resolves the buyer from the access token cookie or a Bearer header
// and stores its provider id in the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)
		if token == "" {
			token = bearerToken(c)
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errInvalidToken), "Invalid or expired token", nil)
			return
		}

		c.Set(ctxProviderIDKey, claims.ProviderID)
		c.Set("jwt_claims", map[string]any{
			"user_id": claims.ProviderID,
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetProviderID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxProviderIDKey)
	if !exists {
		return "", false
	}

	id, ok := v.(string)
	return id, ok && id != ""
}

// SetProviderID is used by tests and trusted internal callers that authenticate elsewhere.
func SetProviderID(c *gin.Context, providerID string) {
	c.Set(ctxProviderIDKey, providerID)
}
