package helpers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
	refreshTokenMaxAge = 3600 * 24 * 30
)

// SetSessionCookies stores the token pair as http-only cookies.
func SetSessionCookies(c *gin.Context, accessToken, refreshToken string, expiresIn int, secure bool) {
	c.SetCookie(AccessTokenCookie, accessToken, expiresIn, "/", "", secure, true)
	c.SetCookie(RefreshTokenCookie, refreshToken, refreshTokenMaxAge, "/", "", secure, true)
}

func ClearSessionCookies(c *gin.Context, secure bool) {
	c.SetCookie(AccessTokenCookie, "", -1, "/", "", secure, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", "", secure, true)
}

// AccessToken reads the token from the cookie, falling back to a bearer
// Authorization header for mobile clients.
func AccessToken(c *gin.Context) string {
	if token, err := c.Cookie(AccessTokenCookie); err == nil && token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
