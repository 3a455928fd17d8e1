// internal/app/store/projects/projectstore.go
package projectstore

import (
	"context"
	"time"

	"github.com/dalemusser/propertyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the upcoming_projects collection.
type Store struct {
	c *mongo.Collection
}

// New creates a upcoming project store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("upcoming_projects")}
}

// Create inserts an upcoming project.
func (s *Store) Create(ctx context.Context, v models.UpcomingProject) (models.UpcomingProject, error) {
	v.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	v.CreatedAt = now
	v.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, v); err != nil {
		return models.UpcomingProject{}, err
	}
	return v, nil
}

// List returns every document in insertion order.
func (s *Store) List(ctx context.Context) ([]models.UpcomingProject, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.UpcomingProject{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
