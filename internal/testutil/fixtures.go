package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/propertyhub/internal/app/system/authutil"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user whose password is the bcrypt hash of password.
func (f *Fixtures) CreateUser(ctx context.Context, fname, email, password string) models.User {
	f.t.Helper()

	hash, err := authutil.HashPassword(password)
	if err != nil {
		f.t.Fatalf("failed to hash password: %v", err)
	}
	now := time.Now().UTC()
	u := models.User{
		ID:           primitive.NewObjectID(),
		FName:        fname,
		LName:        "Tester",
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateListing inserts a listing that references the given image names.
func (f *Fixtures) CreateListing(ctx context.Context, title string, images ...string) models.Listing {
	f.t.Helper()

	if images == nil {
		images = []string{}
	}
	now := time.Now().UTC()
	l := models.Listing{
		ID:           primitive.NewObjectID(),
		Title:        title,
		PropertyType: "house",
		Status:       "sale",
		Price:        250000,
		City:         "Test City",
		Bedrooms:     3,
		Bathrooms:    2,
		Images:       images,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := f.db.Collection("listings").InsertOne(ctx, l); err != nil {
		f.t.Fatalf("failed to create test listing: %v", err)
	}
	return l
}

// CreateBlog inserts a blog post.
func (f *Fixtures) CreateBlog(ctx context.Context, title string) models.Blog {
	f.t.Helper()

	b := models.Blog{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: "A test post",
		Tags:        []string{"test"},
		BannerImage: "banner.jpg",
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := f.db.Collection("blogs").InsertOne(ctx, b); err != nil {
		f.t.Fatalf("failed to create test blog: %v", err)
	}
	return b
}

// CreateComment inserts a comment on blogID with no replies.
func (f *Fixtures) CreateComment(ctx context.Context, blogID primitive.ObjectID, name string) models.Comment {
	f.t.Helper()

	c := models.Comment{
		ID:      primitive.NewObjectID(),
		BlogID:  blogID,
		Name:    name,
		Email:   "commenter@example.com",
		Content: "Nice post",
		Date:    time.Now().UTC(),
		Replies: []models.Reply{},
	}
	if _, err := f.db.Collection("comments").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test comment: %v", err)
	}
	return c
}
