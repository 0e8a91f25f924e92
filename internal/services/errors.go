package services

import (
	"errors"

	"github.com/joshua-takyi/wastenot/internal/models"
)

// StatusError carries the message shown to the user together with the
// underlying cause.
type StatusError struct {
	Status string
	Err    error
}

func (e *StatusError) Error() string {
	return e.Status
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

func statusf(prefix string, err error) *StatusError {
	return &StatusError{Status: prefix + err.Error(), Err: err}
}

var (
	ErrSaveInProgress        = errors.New("a save is already in progress")
	ErrNoIdentity            = &StatusError{Status: models.MessageNoUser}
	ErrLocationDenied        = &StatusError{Status: models.LocationDeniedMessage}
	ErrLocationNotDetermined = errors.New("location permission has not been granted yet")
	ErrCoordinatesRequired   = errors.New("coordinates are required once location access is granted")
)
