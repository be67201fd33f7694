//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"gift-commerce/internal/handler/middleware"
	"gift-commerce/internal/pkg/cookie"
	"gift-commerce/internal/pkg/jwt"
	"gift-commerce/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAuthRouter(svc *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/me", middleware.NewAuthMiddleware(svc).RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetProviderID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"providerId": id})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	router := newAuthRouter(svc)

	t.Run("success: provider id from token is exposed to handlers", func(t *testing.T) {
		token, err := svc.GenerateToken("kakao-1001")
		assert.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "kakao-1001", body["providerId"])
	})

	t.Run("success: token from access token cookie", func(t *testing.T) {
		token, err := svc.GenerateToken("kakao-2002")
		assert.NoError(t, err)

		req := nethttptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: token})
		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "kakao-2002", body["providerId"])
	})

	t.Run("error: missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("error: token signed with another secret", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken("kakao-1001")
		assert.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("error: expired token", func(t *testing.T) {
		token, err := jwt.NewService("secret", -time.Minute).GenerateToken("kakao-1001")
		assert.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}
