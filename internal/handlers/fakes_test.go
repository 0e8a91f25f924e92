package handlers

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/wastenot/internal/helpers"
	"github.com/joshua-takyi/wastenot/internal/models"
	"github.com/supabase-community/gotrue-go/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withIdentity stands in for the auth middleware.
func withIdentity(uid, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid != "" {
			c.Set(helpers.IdentityKey, &helpers.Identity{UID: uid, Email: email})
		}
		c.Next()
	}
}

type memInventory struct {
	items     map[string]models.InventoryItem
	n         int
	createErr error
}

func newMemInventory() *memInventory {
	return &memInventory{items: make(map[string]models.InventoryItem)}
}

func (m *memInventory) CreateItem(ctx context.Context, item *models.InventoryItem) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	m.n++
	item.ID = fmt.Sprintf("id-%d", m.n)
	m.items[item.ID] = *item
	return item.ID, nil
}

func (m *memInventory) UpdateItem(ctx context.Context, item *models.InventoryItem) error {
	if _, ok := m.items[item.ID]; !ok {
		return models.ErrItemNotFound
	}
	m.items[item.ID] = *item
	return nil
}

func (m *memInventory) GetItem(ctx context.Context, id string) (*models.InventoryItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, models.ErrItemNotFound
	}
	return &item, nil
}

func (m *memInventory) ListItems(ctx context.Context, category string) ([]*models.InventoryItem, error) {
	var out []*models.InventoryItem
	for _, item := range m.items {
		if category != "" && item.Category != category {
			continue
		}
		copied := item
		out = append(out, &copied)
	}
	return out, nil
}

type memProfiles struct {
	profiles  map[string]models.Profile
	upsertErr error
}

func newMemProfiles() *memProfiles {
	return &memProfiles{profiles: make(map[string]models.Profile)}
}

func (m *memProfiles) GetProfile(ctx context.Context, uid string) (*models.Profile, error) {
	p, ok := m.profiles[uid]
	if !ok {
		return nil, models.ErrProfileNotFound
	}
	return &p, nil
}

func (m *memProfiles) UpsertProfile(ctx context.Context, uid string, fields models.ProfileFields) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	p := m.profiles[uid]
	p.ID = uid
	p.Username = fields.Username
	p.Location = fields.Location
	p.Email = fields.Email
	if fields.NotificationLeadTime != nil {
		p.NotificationLeadTime = fields.NotificationLeadTime
	}
	m.profiles[uid] = p
	return nil
}

func (m *memProfiles) SetAvatarURL(ctx context.Context, uid string, url string) error {
	p := m.profiles[uid]
	p.ID = uid
	p.AvatarURL = url
	m.profiles[uid] = p
	return nil
}

type stubImages struct {
	url string
	err error
}

func (s *stubImages) Upload(ctx context.Context, data []byte, publicID string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

type stubGeocoder struct {
	placemarks []models.Placemark
	err        error
}

func (s *stubGeocoder) ReverseGeocode(ctx context.Context, c models.Coordinates) ([]models.Placemark, error) {
	return s.placemarks, s.err
}

type stubAuth struct {
	token      *types.TokenResponse
	signInErr  error
	signOutErr error
	signOuts   []string
}

func (s *stubAuth) SignUp(ctx context.Context, email, password string) (*types.SignupResponse, error) {
	return &types.SignupResponse{}, nil
}

func (s *stubAuth) SignIn(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	if s.signInErr != nil {
		return nil, s.signInErr
	}
	return s.token, nil
}

func (s *stubAuth) RefreshToken(ctx context.Context, refreshToken string) (*types.TokenResponse, error) {
	return s.token, nil
}

func (s *stubAuth) SignOut(ctx context.Context, accessToken string) error {
	s.signOuts = append(s.signOuts, accessToken)
	return s.signOutErr
}
