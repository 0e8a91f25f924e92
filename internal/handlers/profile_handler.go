package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/wastenot/internal/helpers"
	"github.com/joshua-takyi/wastenot/internal/models"
	"github.com/joshua-takyi/wastenot/internal/services"
)

const maxAvatarBytes = 10 << 20

func GetProfile(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := p.LoadProfile(c.Request.Context(), helpers.IdentityFrom(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(view, ""))
	}
}

func SaveProfile(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update models.ProfileUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			badRequest(c, err)
			return
		}
		if err := models.Validate.Struct(update); err != nil {
			badRequest(c, err)
			return
		}

		if err := p.SaveProfile(c.Request.Context(), helpers.IdentityFrom(c), update); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, models.MessageProfileUpdated))
	}
}

// UploadAvatar expects the image as the multipart field "avatar".
func UploadAvatar(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := helpers.IdentityFrom(c)
		if !identity.Authenticated() {
			fail(c, services.ErrNoIdentity)
			return
		}

		fileHeader, err := c.FormFile("avatar")
		if err != nil {
			badRequest(c, fmt.Errorf("avatar image is required: %v", err))
			return
		}
		if fileHeader.Size > maxAvatarBytes {
			badRequest(c, fmt.Errorf("avatar image must be at most %d bytes", maxAvatarBytes))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			badRequest(c, err)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			badRequest(c, err)
			return
		}

		url, err := p.UploadAvatar(c.Request.Context(), identity, data)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"avatarURL": url}, models.MessageAvatarUpdated))
	}
}

// ResolveLocation fills the profile's location field from the device
// position. Nothing is saved; the client sends it back with the profile.
func ResolveLocation(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LocationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		if err := models.Validate.Struct(req); err != nil {
			badRequest(c, err)
			return
		}

		location, err := p.ResolveLocation(c.Request.Context(), req)
		if errors.Is(err, services.ErrLocationDenied) {
			c.JSON(http.StatusForbidden, models.LocationPromptResponse(req.Status))
			return
		}
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"location": location}, ""))
	}
}
