package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InventoryRepo is the remote inventory store. Create and update persist
// every field as given; stamping audit fields is the caller's job.
type InventoryRepo interface {
	CreateItem(ctx context.Context, item *InventoryItem) (string, error)
	UpdateItem(ctx context.Context, item *InventoryItem) error
	GetItem(ctx context.Context, id string) (*InventoryItem, error)
	ListItems(ctx context.Context, category string) ([]*InventoryItem, error)
}

// CreateItem assigns a fresh identity, whatever item.ID held before.
func (mdb *MongodbRepo) CreateItem(ctx context.Context, item *InventoryItem) (string, error) {
	col, err := mdb.GetCollection(InventoryColName)
	if err != nil {
		return "", fmt.Errorf("error getting collection: %w", err)
	}

	item.ID = primitive.NewObjectID().Hex()
	if _, err := col.InsertOne(ctx, item); err != nil {
		item.ID = ""
		return "", fmt.Errorf("failed to add inventory item: %w", err)
	}
	return item.ID, nil
}

func (mdb *MongodbRepo) UpdateItem(ctx context.Context, item *InventoryItem) error {
	if item.ID == "" {
		return ErrMissingItemID
	}
	col, err := mdb.GetCollection(InventoryColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}

	res, err := col.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	if err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (mdb *MongodbRepo) GetItem(ctx context.Context, id string) (*InventoryItem, error) {
	if id == "" {
		return nil, ErrMissingItemID
	}
	col, err := mdb.GetCollection(InventoryColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	var item InventoryItem
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding inventory item: %w", err)
	}
	return &item, nil
}

// ListItems returns the household inventory, most recently updated first.
// An empty category lists everything.
func (mdb *MongodbRepo) ListItems(ctx context.Context, category string) ([]*InventoryItem, error) {
	col, err := mdb.GetCollection(InventoryColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find().SetSort(bson.D{{Key: "lastUpdated", Value: -1}})

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding inventory items: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]*InventoryItem, 0)
	for cursor.Next(ctx) {
		var item InventoryItem
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("error decoding inventory item: %w", err)
		}
		items = append(items, &item)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return items, nil
}
