package blogstore_test

import (
	"testing"

	blogstore "github.com/dalemusser/propertyhub/internal/app/store/blogs"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/dalemusser/propertyhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_CreateListGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := blogstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	b, err := store.Create(ctx, models.Blog{
		Title:       "Market update",
		Description: "<p>Prices are up</p>",
		Tags:        []string{"market", "news"},
		BannerImage: "banner.jpg",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if b.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 1 || all[0].Title != "Market update" {
		t.Errorf("unexpected blogs: %+v", all)
	}

	got, err := store.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Tags) != 2 || got.Tags[1] != "news" {
		t.Errorf("Tags: got %v", got.Tags)
	}

	if _, err := store.GetByID(ctx, primitive.NewObjectID()); err != blogstore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
