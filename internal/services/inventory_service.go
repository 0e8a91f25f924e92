package services

import (
	"context"
	"time"

	"github.com/joshua-takyi/wastenot/internal/helpers"
	"github.com/joshua-takyi/wastenot/internal/models"
)

// OnSaveFunc runs after an item was stored successfully.
type OnSaveFunc func(ctx context.Context, item *models.InventoryItem)

// DisplayNamer resolves a uid to the name shown in an item's history.
type DisplayNamer interface {
	DisplayName(ctx context.Context, uid string) string
}

type InventoryService struct {
	inventoryRepo models.InventoryRepo
	names         DisplayNamer
	busy          *helpers.BusyGuard
	onSave        []OnSaveFunc
	now           func() time.Time
}

func NewInventoryService(inventoryRepo models.InventoryRepo, names DisplayNamer) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		names:         names,
		busy:          helpers.NewBusyGuard(),
		now:           time.Now,
	}
}

// OnSave registers fn to run after every successful add or update.
func (is *InventoryService) OnSave(fn OnSaveFunc) {
	is.onSave = append(is.onSave, fn)
}

func (is *InventoryService) saved(ctx context.Context, item *models.InventoryItem) {
	for _, fn := range is.onSave {
		fn(ctx, item)
	}
}

func (is *InventoryService) acquire(identity *helpers.Identity) (string, error) {
	key := identity.UIDOr(helpers.UnknownUser) + ":inventory-save"
	if !is.busy.TryAcquire(key) {
		return "", ErrSaveInProgress
	}
	return key, nil
}

// AddItem stores a manually entered item. leadTimeHours is the caller's
// current notification lead time, read at the moment of the save.
// The store's error is returned as is.
func (is *InventoryService) AddItem(ctx context.Context, identity *helpers.Identity, draft models.ItemDraft, leadTimeHours float64) (*models.InventoryItem, error) {
	key, err := is.acquire(identity)
	if err != nil {
		return nil, err
	}
	defer is.busy.Release(key)

	uid := identity.UIDOr(helpers.UnknownUser)
	quantity := draft.Quantity
	if quantity == 0 {
		quantity = 1
	}
	category := draft.Category
	if category == "" {
		category = models.CategoryDairy
	}

	item := &models.InventoryItem{
		ItemName:           draft.ItemName,
		Quantity:           quantity,
		LastUpdated:        is.now(),
		ProductDescription: draft.ProductDescription,
		ReminderDate:       helpers.EffectiveReminderPtr(draft.ReminderDate, leadTimeHours),
		Category:           category,
		CreatedBy:          uid,
		LastUpdatedBy:      uid,
	}

	if _, err := is.inventoryRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	is.saved(ctx, item)
	return item, nil
}

// UpdateItem applies an edit to an existing item. Creator, category and the
// barcode derived fields always come from the stored record. A draft without
// a reminder date keeps the stored reminder untouched.
func (is *InventoryService) UpdateItem(ctx context.Context, identity *helpers.Identity, id string, draft models.ItemDraft, leadTimeHours float64) (*models.InventoryItem, error) {
	key, err := is.acquire(identity)
	if err != nil {
		return nil, err
	}
	defer is.busy.Release(key)

	prior, err := is.inventoryRepo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	quantity := draft.Quantity
	if quantity == 0 {
		quantity = prior.Quantity
	}
	reminder := prior.ReminderDate
	if draft.ReminderDate != nil {
		reminder = helpers.EffectiveReminderPtr(draft.ReminderDate, leadTimeHours)
	}

	item := &models.InventoryItem{
		ItemName:           draft.ItemName,
		Quantity:           quantity,
		LastUpdated:        is.now(),
		ProductDescription: draft.ProductDescription,
		ReminderDate:       reminder,
		LastUpdatedBy:      identity.UIDOr(prior.LastUpdatedBy),
	}
	item.CarryOverFrom(prior)

	if err := is.inventoryRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	is.saved(ctx, item)
	return item, nil
}

func (is *InventoryService) GetItem(ctx context.Context, id string) (*models.InventoryItem, error) {
	return is.inventoryRepo.GetItem(ctx, id)
}

func (is *InventoryService) ListItems(ctx context.Context, category string) ([]*models.InventoryItem, error) {
	return is.inventoryRepo.ListItems(ctx, helpers.StringTrim(category))
}

// ItemDetail returns the item with the names of whoever created and last
// edited it.
func (is *InventoryService) ItemDetail(ctx context.Context, id string) (*models.ItemDetail, error) {
	item, err := is.inventoryRepo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &models.ItemDetail{
		Item:          item,
		CreatedByName: helpers.UnknownUser,
		UpdatedByName: helpers.UnknownUser,
	}
	if is.names != nil {
		detail.CreatedByName = is.names.DisplayName(ctx, item.CreatedBy)
		detail.UpdatedByName = is.names.DisplayName(ctx, item.LastUpdatedBy)
	}
	return detail, nil
}
