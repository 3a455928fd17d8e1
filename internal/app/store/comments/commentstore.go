// internal/app/store/comments/commentstore.go
package commentstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/propertyhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when the comment does not exist.
var ErrNotFound = errors.New("comment not found")

// Store provides access to the comments collection.
type Store struct {
	c *mongo.Collection
}

// New creates a comments store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("comments")}
}

// Create inserts c with an empty reply list.
func (s *Store) Create(ctx context.Context, c models.Comment) (models.Comment, error) {
	c.ID = primitive.NewObjectID()
	if c.Date.IsZero() {
		c.Date = time.Now().UTC()
	}
	c.Replies = []models.Reply{}
	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Comment{}, err
	}
	return c, nil
}

// GetByID loads one comment with its replies.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	var c models.Comment
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ListByBlog returns the comments on one blog post, oldest first.
func (s *Store) ListByBlog(ctx context.Context, blogID primitive.ObjectID) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"blog_id": blogID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Comment{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddReply appends r to the comment's replies in a single $push, so
// concurrent replies are all kept.
func (s *Store) AddReply(ctx context.Context, commentID primitive.ObjectID, r models.Reply) (models.Reply, error) {
	if r.Date.IsZero() {
		r.Date = time.Now().UTC()
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": commentID}, bson.M{"$push": bson.M{"replies": r}})
	if err != nil {
		return models.Reply{}, err
	}
	if res.MatchedCount == 0 {
		return models.Reply{}, ErrNotFound
	}
	return r, nil
}
