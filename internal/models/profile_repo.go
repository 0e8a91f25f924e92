package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProfileRepo writes merge into the stored document: fields that are not
// named are left as they are, and a missing document is created.
type ProfileRepo interface {
	GetProfile(ctx context.Context, uid string) (*Profile, error)
	UpsertProfile(ctx context.Context, uid string, fields ProfileFields) error
	SetAvatarURL(ctx context.Context, uid string, url string) error
}

func (mdb *MongodbRepo) GetProfile(ctx context.Context, uid string) (*Profile, error) {
	col, err := mdb.GetCollection(ProfileColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	var profile Profile
	err = col.FindOne(ctx, bson.M{"_id": uid}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding profile: %w", err)
	}
	return &profile, nil
}

func (mdb *MongodbRepo) UpsertProfile(ctx context.Context, uid string, fields ProfileFields) error {
	set := bson.M{
		"username": fields.Username,
		"location": fields.Location,
		"email":    fields.Email,
	}
	if fields.NotificationLeadTime != nil {
		set["notificationLeadTime"] = *fields.NotificationLeadTime
	}
	return mdb.mergeProfile(ctx, uid, set)
}

func (mdb *MongodbRepo) SetAvatarURL(ctx context.Context, uid string, url string) error {
	return mdb.mergeProfile(ctx, uid, bson.M{"avatarURL": url})
}

func (mdb *MongodbRepo) mergeProfile(ctx context.Context, uid string, set bson.M) error {
	if uid == "" {
		return fmt.Errorf("profile ID is required")
	}
	col, err := mdb.GetCollection(ProfileColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}

	set["updatedAt"] = time.Now()
	update := bson.M{"$set": set}
	opts := options.Update().SetUpsert(true)

	if _, err := col.UpdateOne(ctx, bson.M{"_id": uid}, update, opts); err != nil {
		return fmt.Errorf("error upserting profile: %w", err)
	}
	return nil
}
