package services

import (
	"context"
	"errors"

	"github.com/joshua-takyi/wastenot/internal/helpers"
	"github.com/joshua-takyi/wastenot/internal/models"
)

// ImageHost stores image bytes under a public id and returns the secure URL.
type ImageHost interface {
	Upload(ctx context.Context, data []byte, publicID string) (string, error)
}

type Geocoder interface {
	ReverseGeocode(ctx context.Context, c models.Coordinates) ([]models.Placemark, error)
}

type ProfileService struct {
	profileRepo models.ProfileRepo
	images      ImageHost
	geocoder    Geocoder
}

func NewProfileService(profileRepo models.ProfileRepo, images ImageHost, geocoder Geocoder) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		images:      images,
		geocoder:    geocoder,
	}
}

// AvatarPublicID is the image host key of a user's avatar.
func AvatarPublicID(uid string) string {
	return "avatars-" + uid
}

func leadTimeOf(p *models.Profile) float64 {
	if p == nil || p.NotificationLeadTime == nil {
		return helpers.DefaultLeadTimeHours
	}
	return *p.NotificationLeadTime
}

// LoadProfile returns the caller's profile. Email always comes from the auth
// identity; a profile that was never saved yields the defaults.
func (ps *ProfileService) LoadProfile(ctx context.Context, identity *helpers.Identity) (*models.ProfileView, error) {
	if !identity.Authenticated() {
		return nil, ErrNoIdentity
	}

	view := &models.ProfileView{
		Email:                identity.Email,
		NotificationLeadTime: helpers.DefaultLeadTimeHours,
	}

	p, err := ps.profileRepo.GetProfile(ctx, identity.UID)
	if errors.Is(err, models.ErrProfileNotFound) {
		return view, nil
	}
	if err != nil {
		return nil, statusf("Error loading profile: ", err)
	}

	view.Username = p.Username
	view.Location = p.Location
	view.AvatarURL = p.AvatarURL
	view.NotificationLeadTime = leadTimeOf(p)
	return view, nil
}

// SaveProfile merges the text fields into the caller's profile. The avatar
// is never touched here.
func (ps *ProfileService) SaveProfile(ctx context.Context, identity *helpers.Identity, update models.ProfileUpdate) error {
	if !identity.Authenticated() {
		return ErrNoIdentity
	}

	fields := models.ProfileFields{
		Username: update.Username,
		Location: update.Location,
		Email:    identity.Email,
	}
	if update.NotificationLeadTime != nil {
		lead := helpers.ClampLeadTime(*update.NotificationLeadTime)
		fields.NotificationLeadTime = &lead
	}

	if err := ps.profileRepo.UpsertProfile(ctx, identity.UID, fields); err != nil {
		return statusf("Error saving profile: ", err)
	}
	return nil
}

// UploadAvatar sends the image to the image host and, only once that
// succeeded, records the returned URL on the profile.
func (ps *ProfileService) UploadAvatar(ctx context.Context, identity *helpers.Identity, data []byte) (string, error) {
	if !identity.Authenticated() {
		return "", ErrNoIdentity
	}

	url, err := ps.images.Upload(ctx, data, AvatarPublicID(identity.UID))
	if err != nil {
		return "", statusf("Upload failed: ", err)
	}

	if err := ps.profileRepo.SetAvatarURL(ctx, identity.UID, url); err != nil {
		return "", statusf("Error saving avatar URL: ", err)
	}
	return url, nil
}

// LeadTime is the notification lead time to apply to the caller's next save.
// Anything that prevents reading it yields the default.
func (ps *ProfileService) LeadTime(ctx context.Context, identity *helpers.Identity) float64 {
	if !identity.Authenticated() {
		return helpers.DefaultLeadTimeHours
	}
	p, err := ps.profileRepo.GetProfile(ctx, identity.UID)
	if err != nil {
		return helpers.DefaultLeadTimeHours
	}
	return leadTimeOf(p)
}

func (ps *ProfileService) DisplayName(ctx context.Context, uid string) string {
	if uid == "" || uid == helpers.UnknownUser {
		return helpers.UnknownUser
	}
	p, err := ps.profileRepo.GetProfile(ctx, uid)
	if err != nil {
		return helpers.UnknownUser
	}
	return p.Username
}

// ResolveLocation turns the device's current position into a display string
// such as "Austin, TX, United States". An empty string means the geocoder
// had nothing for the point.
func (ps *ProfileService) ResolveLocation(ctx context.Context, req models.LocationRequest) (string, error) {
	if req.Status.NeedsSettingsPrompt() {
		return "", ErrLocationDenied
	}
	if !req.Status.Authorized() {
		return "", ErrLocationNotDetermined
	}
	if req.Coordinates == nil {
		return "", ErrCoordinatesRequired
	}
	if err := models.Validate.Struct(req.Coordinates); err != nil {
		return "", err
	}

	placemarks, err := ps.geocoder.ReverseGeocode(ctx, *req.Coordinates)
	if err != nil {
		return "", &StatusError{Status: models.MessageGeocodeFailed, Err: err}
	}
	if len(placemarks) == 0 {
		return "", nil
	}
	return placemarks[0].Format(), nil
}
