package validators_test

import (
	"testing"
	"time"

	"github.com/dalemusser/propertyhub/internal/app/system/validators"
	"github.com/dalemusser/propertyhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}
	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		t.Fatalf("ListCollectionNames failed: %v", err)
	}
	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[n] = true
	}
	for _, want := range validators.Collections {
		if !have[want] {
			t.Errorf("collection %q was not created", want)
		}
	}
}

func TestEnsureAll_RejectsInvalidBlog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Missing banner_image and tags.
	_, err := db.Collection("blogs").InsertOne(ctx, bson.M{
		"_id":         primitive.NewObjectID(),
		"title":       "No banner",
		"description": "text",
		"created_at":  time.Now(),
	})
	if err == nil {
		t.Error("expected validator to reject blog without banner_image")
	}
}

func TestEnsureAll_AcceptsValidReview(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err := db.Collection("reviews").InsertOne(ctx, bson.M{
		"listing_id": primitive.NewObjectID(),
		"name":       "Ann",
		"content":    "Lovely",
		"website":    "",
		"date":       time.Now(),
	})
	if err != nil {
		t.Errorf("valid review rejected: %v", err)
	}
}
