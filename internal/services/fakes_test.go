package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/joshua-takyi/wastenot/internal/models"
)

type fakeInventoryRepo struct {
	mu        sync.Mutex
	items     map[string]models.InventoryItem
	nextID    int
	createErr error
	updateErr error

	// when set, CreateItem signals started and waits on release
	started chan struct{}
	release chan struct{}
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: make(map[string]models.InventoryItem)}
}

func (f *fakeInventoryRepo) CreateItem(ctx context.Context, item *models.InventoryItem) (string, error) {
	if f.started != nil {
		f.started <- struct{}{}
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	item.ID = fmt.Sprintf("item-%d", f.nextID)
	f.items[item.ID] = *item
	return item.ID, nil
}

func (f *fakeInventoryRepo) UpdateItem(ctx context.Context, item *models.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if item.ID == "" {
		return models.ErrMissingItemID
	}
	if _, ok := f.items[item.ID]; !ok {
		return models.ErrItemNotFound
	}
	f.items[item.ID] = *item
	return nil
}

func (f *fakeInventoryRepo) GetItem(ctx context.Context, id string) (*models.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, models.ErrItemNotFound
	}
	return &item, nil
}

func (f *fakeInventoryRepo) ListItems(ctx context.Context, category string) ([]*models.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]*models.InventoryItem, 0, len(f.items))
	for _, item := range f.items {
		if category != "" && item.Category != category {
			continue
		}
		copied := item
		items = append(items, &copied)
	}
	return items, nil
}

func (f *fakeInventoryRepo) stored(id string) models.InventoryItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[id]
}

type fakeProfileRepo struct {
	profiles    map[string]models.Profile
	getErr      error
	upsertErr   error
	avatarErr   error
	upserts     []models.ProfileFields
	avatarCalls int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]models.Profile)}
}

func (f *fakeProfileRepo) GetProfile(ctx context.Context, uid string) (*models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.profiles[uid]
	if !ok {
		return nil, models.ErrProfileNotFound
	}
	return &p, nil
}

func (f *fakeProfileRepo) UpsertProfile(ctx context.Context, uid string, fields models.ProfileFields) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, fields)
	p := f.profiles[uid]
	p.ID = uid
	p.Username = fields.Username
	p.Location = fields.Location
	p.Email = fields.Email
	if fields.NotificationLeadTime != nil {
		lead := *fields.NotificationLeadTime
		p.NotificationLeadTime = &lead
	}
	f.profiles[uid] = p
	return nil
}

func (f *fakeProfileRepo) SetAvatarURL(ctx context.Context, uid string, url string) error {
	f.avatarCalls++
	if f.avatarErr != nil {
		return f.avatarErr
	}
	p := f.profiles[uid]
	p.ID = uid
	p.AvatarURL = url
	f.profiles[uid] = p
	return nil
}

type fakeImageHost struct {
	url      string
	err      error
	publicID string
}

func (f *fakeImageHost) Upload(ctx context.Context, data []byte, publicID string) (string, error) {
	f.publicID = publicID
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type fakeGeocoder struct {
	placemarks []models.Placemark
	err        error
}

func (f *fakeGeocoder) ReverseGeocode(ctx context.Context, c models.Coordinates) ([]models.Placemark, error) {
	return f.placemarks, f.err
}
