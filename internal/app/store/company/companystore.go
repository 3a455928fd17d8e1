// internal/app/store/company/companystore.go
package companystore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/propertyhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by Get before any company profile has been saved.
var ErrNotFound = errors.New("company details not found")

// Store provides access to the company collection.
// The collection holds a single document whose _id is models.CompanyID.
type Store struct {
	c *mongo.Collection
}

// New creates a company store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("company")}
}

// Get returns the company profile.
func (s *Store) Get(ctx context.Context) (*models.Company, error) {
	var c models.Company
	if err := s.c.FindOne(ctx, bson.M{"_id": models.CompanyID}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Save creates or updates the profile. Because every save targets the same
// _id, concurrent first saves can never produce two documents; the loser of
// an insert race gets a duplicate key error and is retried as an update.
// Logo is only written when non-empty.
func (s *Store) Save(ctx context.Context, c models.Company) (models.Company, error) {
	set := bson.M{
		"description": c.Description,
		"email":       c.Email,
		"phone":       c.Phone,
		"address":     c.Address,
		"updated_at":  time.Now().UTC(),
	}
	if c.Logo != "" {
		set["logo"] = c.Logo
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var out models.Company
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": models.CompanyID}, bson.M{"$set": set}, opts).Decode(&out)
	if err != nil && wafflemongo.IsDup(err) {
		err = s.c.FindOneAndUpdate(ctx, bson.M{"_id": models.CompanyID}, bson.M{"$set": set}, opts).Decode(&out)
	}
	if err != nil {
		return models.Company{}, err
	}
	return out, nil
}
