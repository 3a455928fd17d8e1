// internal/app/store/contacts/contactstore.go
package contactstore

import (
	"context"
	"time"

	"github.com/dalemusser/propertyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the contact_forms collection.
type Store struct {
	c *mongo.Collection
}

// New creates a contact form store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contact_forms")}
}

// Create inserts v with a new id.
func (s *Store) Create(ctx context.Context, v models.ContactForm) (models.ContactForm, error) {
	v.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	v.CreatedAt = now
	if _, err := s.c.InsertOne(ctx, v); err != nil {
		return models.ContactForm{}, err
	}
	return v, nil
}

// List returns every document in insertion order.
func (s *Store) List(ctx context.Context) ([]models.ContactForm, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.ContactForm{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
