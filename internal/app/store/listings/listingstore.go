// internal/app/store/listings/listingstore.go
package listingstore

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

// ErrNotFound is returned when no listing has the requested id.
var ErrNotFound = errors.New("listing not found")

// Store provides access to the listings collection.
type Store struct {
	c *mongo.Collection
}

// New creates a listings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("listings")}
}

// Create inserts l with a new id and timestamps.
func (s *Store) Create(ctx context.Context, l models.Listing) (models.Listing, error) {
	l.ID = primitive.NewObjectID()
	if l.Images == nil {
		l.Images = []string{}
	}
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, l); err != nil {
		return models.Listing{}, err
	}
	return l, nil
}

// List returns every listing in insertion order.
func (s *Store) List(ctx context.Context) ([]models.Listing, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Listing{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID loads one listing.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Listing, error) {
	var l models.Listing
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// Update holds a partial change to a listing. Nil fields are left alone.
type Update struct {
	Title        *string
	Description  *string
	PropertyType *string
	Status       *string
	Price        *float64
	Address      *string
	City         *string
	State        *string
	Zip          *string
	Country      *string
	Bedrooms     *int
	Bathrooms    *int
	Area         *float64
	YearBuilt    *int

	Images  []string // replaces the image list when non-nil
	PDFFile *string

	Details map[string][]any // keyed by models.DetailFields names
}

var detailBSON = map[string]string{
	"interiorDetails": "interior_details",
	"outdoorDetails":  "outdoor_details",
	"utilities":       "utilities",
	"otherFeatures":   "other_features",
}

func (u Update) set() bson.M {
	set := bson.M{}
	put := func(key string, v any, ok bool) {
		if ok {
			set[key] = v
		}
	}
	put("title", deref(u.Title), u.Title != nil)
	put("description", deref(u.Description), u.Description != nil)
	put("property_type", deref(u.PropertyType), u.PropertyType != nil)
	put("status", deref(u.Status), u.Status != nil)
	put("address", deref(u.Address), u.Address != nil)
	put("city", deref(u.City), u.City != nil)
	put("state", deref(u.State), u.State != nil)
	put("zip", deref(u.Zip), u.Zip != nil)
	put("country", deref(u.Country), u.Country != nil)
	put("pdf_file", deref(u.PDFFile), u.PDFFile != nil)
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.Area != nil {
		set["area"] = *u.Area
	}
	if u.Bedrooms != nil {
		set["bedrooms"] = *u.Bedrooms
	}
	if u.Bathrooms != nil {
		set["bathrooms"] = *u.Bathrooms
	}
	if u.YearBuilt != nil {
		set["year_built"] = *u.YearBuilt
	}
	if u.Images != nil {
		set["images"] = u.Images
	}
	for field, vals := range u.Details {
		if key, ok := detailBSON[field]; ok {
			set[key] = vals
		}
	}
	return set
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Update applies upd and returns the listing as stored afterwards.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (*models.Listing, error) {
	set := upd.set()
	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var l models.Listing
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// Delete removes the listing. Reviews that reference it are kept.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
