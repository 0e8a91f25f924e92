package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/wastenot/internal/helpers"
	"github.com/joshua-takyi/wastenot/internal/models"
	"github.com/joshua-takyi/wastenot/internal/services"
)

type credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func SignUp(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentials
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}

		res, err := a.SignUp(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			badRequest(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(res, ""))
	}
}

func Login(a *services.AuthService, secureCookies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentials
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request payload"))
			return
		}

		tokenRes, err := a.SignIn(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid email or password"))
			return
		}
		if tokenRes.AccessToken == "" {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid token response"))
			return
		}

		helpers.SetSessionCookies(c, tokenRes.AccessToken, tokenRes.RefreshToken, tokenRes.ExpiresIn, secureCookies)
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"user":          tokenRes.User,
			"access_token":  tokenRes.AccessToken,
			"refresh_token": tokenRes.RefreshToken,
			"expires_in":    tokenRes.ExpiresIn,
		}, ""))
	}
}

// Logout never fails from the client's point of view; a provider error is
// only logged.
func Logout(a *services.AuthService, secureCookies bool, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.SignOut(c.Request.Context(), helpers.AccessToken(c)); err != nil {
			logger.Warn("Sign out error", "error", err)
		}
		helpers.ClearSessionCookies(c, secureCookies)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, models.MessageLoggedOut))
	}
}
