package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joshua-takyi/wastenot/internal/models"
	"github.com/joshua-takyi/wastenot/internal/services"
)

// statusFor maps a service error to the HTTP status the client sees.
func statusFor(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, models.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrMissingItemID),
		errors.Is(err, services.ErrLocationNotDetermined),
		errors.Is(err, services.ErrCoordinatesRequired),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrSaveInProgress):
		return http.StatusConflict
	case errors.Is(err, services.ErrNoIdentity):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrLocationDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// fail answers with the error's own description. Server side failures are
// also attached to the context for the error logging middleware.
func fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, models.ErrorResponse(err.Error()))
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
}
