// internal/app/store/addresses/addressstore.go
package addressstore

import (
	"context"
	"errors"

	"github.com/dalemusser/propertyhub/internal/app/system/normalize"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when no address is stored for the email.
	ErrNotFound = errors.New("address not found for the provided email")
	// ErrDuplicateEmail is returned when an address already exists for the email.
	ErrDuplicateEmail = errors.New("an address for this email already exists")
)

// Store provides access to the addresses collection. Email identifies an
// address for updates.
type Store struct {
	c *mongo.Collection
}

// New creates an addresses store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("addresses")}
}

// Create inserts a.
func (s *Store) Create(ctx context.Context, a models.Address) (models.Address, error) {
	a.ID = primitive.NewObjectID()
	a.Email = normalize.Email(a.Email)
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Address{}, ErrDuplicateEmail
		}
		return models.Address{}, err
	}
	return a, nil
}

// List returns all stored addresses.
func (s *Store) List(ctx context.Context) ([]models.Address, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Address{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update holds a partial address change. Nil fields are left alone; the
// email itself is the key and cannot be changed here.
type Update struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
	City      *string
	State     *string
	Country   *string
	Zip       *string
}

func (u Update) set() bson.M {
	set := bson.M{}
	for k, v := range map[string]*string{
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"phone":      u.Phone,
		"address":    u.Address,
		"city":       u.City,
		"state":      u.State,
		"country":    u.Country,
		"zip":        u.Zip,
	} {
		if v != nil {
			set[k] = *v
		}
	}
	return set
}

// UpdateByEmail applies upd to the address stored for email and returns it.
func (s *Store) UpdateByEmail(ctx context.Context, email string, upd Update) (*models.Address, error) {
	filter := bson.M{"email": normalize.Email(email)}
	set := upd.set()

	var a models.Address
	if len(set) == 0 {
		if err := s.c.FindOne(ctx, filter).Decode(&a); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return &a, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := s.c.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
