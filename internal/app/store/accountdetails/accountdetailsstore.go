// internal/app/store/accountdetails/accountdetailsstore.go
package accountdetailsstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/propertyhub/internal/app/system/normalize"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a user has no account details yet.
var ErrNotFound = errors.New("account details not found")

// Store provides access to the account_details collection.
// There is one document per user_id.
type Store struct {
	c *mongo.Collection
}

// New creates an account details store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("account_details")}
}

// UpsertByUserID creates or replaces the details for d.UserID in one atomic
// operation. ProfileImage is only written when it is non-empty, so an
// update without a new image keeps the old one.
func (s *Store) UpsertByUserID(ctx context.Context, d models.AccountDetails) (models.AccountDetails, error) {
	set := bson.M{
		"user_id":    d.UserID,
		"fname":      d.FName,
		"lname":      d.LName,
		"username":   d.Username,
		"email":      normalize.Email(d.Email),
		"phone":      d.Phone,
		"address":    d.Address,
		"updated_at": time.Now().UTC(),
	}
	if d.ProfileImage != "" {
		set["profile_image"] = d.ProfileImage
	}

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"_id": primitive.NewObjectID()},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var out models.AccountDetails
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"user_id": d.UserID}, update, opts).Decode(&out); err != nil {
		return models.AccountDetails{}, err
	}
	return out, nil
}

// GetByUserID loads the details for a user.
func (s *Store) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.AccountDetails, error) {
	var d models.AccountDetails
	if err := s.c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}
