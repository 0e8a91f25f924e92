package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joshua-takyi/wastenot/internal/helpers"
	"github.com/joshua-takyi/wastenot/internal/models"
	"github.com/supabase-community/gotrue-go/types"
)

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}
		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"user_id", helpers.IdentityFrom(c).UIDOr(""),
		)
	}
}

// ErrorHandler logs errors attached with c.Error and answers with a generic
// envelope when the handler did not write a response itself.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last()
		requestID, _ := c.Get("request_id")

		attrs := []any{
			"request_id", requestID,
			"error", err.Error(),
			"status", c.Writer.Status(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		}
		if cause := errors.Unwrap(err.Err); cause != nil {
			attrs = append(attrs, "cause", cause.Error())
		}
		logger.Error("Request error", attrs...)

		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		}
	}
}

type TokenVerifier interface {
	Validate(token string) (*helpers.CustomClaims, error)
}

type TokenRefresher interface {
	RefreshToken(ctx context.Context, refreshToken string) (*types.TokenResponse, error)
}

// Authenticate resolves the caller's identity from the session. Requests
// that carry no token continue anonymously and handlers decide what that
// means for them. A token that fails and cannot be refreshed is answered
// with 401.
func Authenticate(verifier TokenVerifier, refresher TokenRefresher, secureCookies bool, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := helpers.AccessToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := verifier.Validate(token)
		if err != nil {
			claims = refreshSession(c, verifier, refresher, secureCookies, logger)
			if claims == nil {
				logger.Warn("Rejected session", "error", err)
				helpers.ClearSessionCookies(c, secureCookies)
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(models.MessageSessionExpired))
				return
			}
		}

		c.Set(helpers.IdentityKey, helpers.NewIdentity(claims))
		c.Next()
	}
}

func refreshSession(c *gin.Context, verifier TokenVerifier, refresher TokenRefresher, secureCookies bool, logger *slog.Logger) *helpers.CustomClaims {
	refreshToken, err := c.Cookie(helpers.RefreshTokenCookie)
	if err != nil || refreshToken == "" || refresher == nil {
		return nil
	}

	tokenRes, err := refresher.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil || tokenRes == nil || tokenRes.AccessToken == "" {
		logger.Error("Token refresh failed", "error", err)
		return nil
	}

	claims, err := verifier.Validate(tokenRes.AccessToken)
	if err != nil {
		logger.Error("Refreshed token validation failed", "error", err)
		return nil
	}

	helpers.SetSessionCookies(c, tokenRes.AccessToken, tokenRes.RefreshToken, tokenRes.ExpiresIn, secureCookies)
	logger.Info("Token refreshed successfully",
		"user_id", claims.Subject,
		"expires_in", tokenRes.ExpiresIn,
	)
	return claims
}
