// internal/app/store/checkouts/checkoutstore.go
package checkoutstore

import (
	"context"
	"time"

	"github.com/dalemusser/propertyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the checkouts collection.
type Store struct {
	c *mongo.Collection
}

// New creates a checkout store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("checkouts")}
}

// Create records an order. The total is stored as submitted.
func (s *Store) Create(ctx context.Context, v models.Checkout) (models.Checkout, error) {
	v.ID = primitive.NewObjectID()
	if v.ItemDetails == nil {
		v.ItemDetails = []models.CheckoutItem{}
	}
	now := time.Now().UTC()
	v.CreatedAt = now
	v.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, v); err != nil {
		return models.Checkout{}, err
	}
	return v, nil
}

// List returns all orders, oldest first.
func (s *Store) List(ctx context.Context) ([]models.Checkout, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Checkout{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
