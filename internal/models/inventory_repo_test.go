package models

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const testDb = "wastenot_test"

func TestMongoCreateItem(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns a fresh id", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, testDb)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		item := &InventoryItem{ID: "client-supplied", ItemName: "Milk", Quantity: 1}
		id, err := repo.CreateItem(context.Background(), item)
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if id == "" || id == "client-supplied" {
			mt.Errorf("expected a store assigned id, got %q", id)
		}
		if item.ID != id {
			mt.Errorf("item.ID = %q, want %q", item.ID, id)
		}
	})

	mt.Run("store error", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, testDb)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		item := &InventoryItem{ItemName: "Milk", Quantity: 1}
		if _, err := repo.CreateItem(context.Background(), item); err == nil {
			mt.Fatal("expected an error")
		}
		if item.ID != "" {
			mt.Errorf("failed create left id %q on the item", item.ID)
		}
	})
}

func TestMongoUpdateItem(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("replaces existing record", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, testDb)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := repo.UpdateItem(context.Background(), &InventoryItem{ID: "abc", ItemName: "Milk", Quantity: 3})
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
	})

	mt.Run("missing record", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, testDb)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := repo.UpdateItem(context.Background(), &InventoryItem{ID: "nope"})
		if !errors.Is(err, ErrItemNotFound) {
			mt.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	mt.Run("empty id", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, testDb)
		if err := repo.UpdateItem(context.Background(), &InventoryItem{}); !errors.Is(err, ErrMissingItemID) {
			mt.Fatalf("expected ErrMissingItemID, got %v", err)
		}
	})
}

func TestMongoGetAndListItems(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := testDb + "." + InventoryColName

	mt.Run("get existing", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, testDb)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "abc"},
			{Key: "itemName", Value: "Milk"},
			{Key: "quantity", Value: 2},
			{Key: "category", Value: CategoryDairy},
			{Key: "createdBy", Value: "alice"},
		}))

		item, err := repo.GetItem(context.Background(), "abc")
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if item.ID != "abc" || item.ItemName != "Milk" || item.Quantity != 2 || item.CreatedBy != "alice" {
			mt.Errorf("unexpected item %+v", item)
		}
		if item.ReminderDate != nil {
			mt.Errorf("expected no reminder, got %v", item.ReminderDate)
		}
	})

	mt.Run("get missing", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, testDb)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		if _, err := repo.GetItem(context.Background(), "abc"); !errors.Is(err, ErrItemNotFound) {
			mt.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := MongodbNewRepo(mt.Client, testDb)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "b"}, {Key: "itemName", Value: "Bread"}},
			bson.D{{Key: "_id", Value: "a"}, {Key: "itemName", Value: "Milk"}},
		))

		items, err := repo.ListItems(context.Background(), "")
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 || items[0].ItemName != "Bread" || items[1].ItemName != "Milk" {
			mt.Errorf("unexpected items %+v", items)
		}
	})
}
