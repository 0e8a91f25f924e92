package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

const (
	DefaultDbName    = "wastenot"
	InventoryColName = "inventory"
	ProfileColName   = "users"
)

var (
	ErrItemNotFound    = errors.New("inventory item not found")
	ErrMissingItemID   = errors.New("inventory item ID is required")
	ErrProfileNotFound = errors.New("profile not found")
)

type SupabaseRepo struct {
	supabaseClient *supabase.Client
}

func SupabaseNewRepo(supabaseClient *supabase.Client) *SupabaseRepo {
	return &SupabaseRepo{
		supabaseClient: supabaseClient,
	}
}

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	if dbName == "" {
		dbName = DefaultDbName
	}
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}

func (mdb *MongodbRepo) GetCollection(colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Database(mdb.dbName).Collection(colName), nil
}

// compile-time checks
var (
	_ InventoryRepo = (*MongodbRepo)(nil)
	_ ProfileRepo   = (*MongodbRepo)(nil)
	_ AuthRepo      = (*SupabaseRepo)(nil)
)
