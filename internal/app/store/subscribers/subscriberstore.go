// internal/app/store/subscribers/subscriberstore.go
package subscriberstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/propertyhub/internal/app/system/normalize"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateEmail is returned when the address is already subscribed.
var ErrDuplicateEmail = errors.New("this email is already subscribed")

// Store provides access to the subscribers collection.
type Store struct {
	c *mongo.Collection
}

// New creates a subscribers store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("subscribers")}
}

// Create subscribes email. Uniqueness relies on the unique index on email.
func (s *Store) Create(ctx context.Context, email string) (models.Subscriber, error) {
	sub := models.Subscriber{
		ID:        primitive.NewObjectID(),
		Email:     normalize.Email(email),
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, sub); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Subscriber{}, ErrDuplicateEmail
		}
		return models.Subscriber{}, err
	}
	return sub, nil
}

// List returns all subscribers.
func (s *Store) List(ctx context.Context) ([]models.Subscriber, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Subscriber{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
