package accountdetailsstore_test

import (
	"testing"

	accountdetailsstore "github.com/dalemusser/propertyhub/internal/app/store/accountdetails"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/dalemusser/propertyhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_UpsertByUserID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := accountdetailsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()

	first, err := store.UpsertByUserID(ctx, models.AccountDetails{
		UserID:       userID,
		FName:        "Ann",
		Email:        "ANN@example.com",
		ProfileImage: "ann.png",
	})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if first.ID == primitive.NilObjectID {
		t.Fatal("expected ID to be assigned")
	}
	if first.Email != "ann@example.com" {
		t.Errorf("Email: got %q, want normalized", first.Email)
	}

	second, err := store.UpsertByUserID(ctx, models.AccountDetails{
		UserID: userID,
		FName:  "Annie",
		Email:  "ann@example.com",
	})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected same document, got %v and %v", first.ID, second.ID)
	}
	if second.FName != "Annie" {
		t.Errorf("FName: got %q", second.FName)
	}
	if second.ProfileImage != "ann.png" {
		t.Errorf("ProfileImage should be kept, got %q", second.ProfileImage)
	}

	n, err := db.Collection("account_details").CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 document, got %d", n)
	}
}

func TestStore_GetByUserID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := accountdetailsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetByUserID(ctx, primitive.NewObjectID()); err != accountdetailsstore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	userID := primitive.NewObjectID()
	if _, err := store.UpsertByUserID(ctx, models.AccountDetails{UserID: userID, Phone: "555"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	got, err := store.GetByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("GetByUserID failed: %v", err)
	}
	if got.Phone != "555" {
		t.Errorf("Phone: got %q", got.Phone)
	}
}
