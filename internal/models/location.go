package models

import "github.com/joshua-takyi/wastenot/internal/helpers"

// LocationAuthorization mirrors the device's location permission state.
type LocationAuthorization string

const (
	LocationNotDetermined       LocationAuthorization = "not_determined"
	LocationRestricted          LocationAuthorization = "restricted"
	LocationDenied              LocationAuthorization = "denied"
	LocationAuthorizedWhenInUse LocationAuthorization = "authorized_when_in_use"
	LocationAuthorizedAlways    LocationAuthorization = "authorized_always"
)

const (
	LocationDeniedTitle   = "Location Access Denied"
	LocationDeniedMessage = "Please enable location services for this app in Settings."
)

func (s LocationAuthorization) String() string {
	switch s {
	case LocationNotDetermined:
		return "Not Determined"
	case LocationRestricted:
		return "Restricted"
	case LocationDenied:
		return "Denied"
	case LocationAuthorizedWhenInUse:
		return "Authorized When In Use"
	case LocationAuthorizedAlways:
		return "Authorized Always"
	default:
		return "Unknown"
	}
}

// NeedsSettingsPrompt reports whether the user must be sent to system settings.
func (s LocationAuthorization) NeedsSettingsPrompt() bool {
	return s == LocationDenied || s == LocationRestricted
}

func (s LocationAuthorization) Authorized() bool {
	return s == LocationAuthorizedWhenInUse || s == LocationAuthorizedAlways
}

type Coordinates struct {
	Latitude  float64 `json:"lat" validate:"min=-90,max=90"`
	Longitude float64 `json:"lng" validate:"min=-180,max=180"`
}

// LocationRequest is sent by the client when the user asks to use their
// current location.
type LocationRequest struct {
	Status      LocationAuthorization `json:"authorization_status" validate:"required"`
	Coordinates *Coordinates          `json:"coordinates"`
}

// Placemark is one reverse geocoding result. Any part may be empty.
type Placemark struct {
	Locality           string `json:"locality,omitempty"`
	AdministrativeArea string `json:"administrativeArea,omitempty"`
	Country            string `json:"country,omitempty"`
}

// Format joins the non-empty parts, e.g. "Austin, TX, United States".
func (p Placemark) Format() string {
	return helpers.JoinNonEmpty(p.Locality, p.AdministrativeArea, p.Country)
}
