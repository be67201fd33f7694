package cookie

import (
	"github.com/gin-gonic/gin"
)

// The OAuth login service sets this cookie on the shared domain; this service only reads it.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
