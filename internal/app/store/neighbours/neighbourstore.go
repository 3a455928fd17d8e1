// internal/app/store/neighbours/neighbourstore.go
package neighbourstore

import (
	"context"
	"time"

	"github.com/dalemusser/propertyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the neighbours collection.
type Store struct {
	c *mongo.Collection
}

// New creates a neighbour store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("neighbours")}
}

func (s *Store) Create(ctx context.Context, v models.Neighbour) (models.Neighbour, error) {
	v.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	v.CreatedAt = now
	v.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, v); err != nil {
		return models.Neighbour{}, err
	}
	return v, nil
}

// List returns all neighbourhood entries.
func (s *Store) List(ctx context.Context) ([]models.Neighbour, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Neighbour{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
