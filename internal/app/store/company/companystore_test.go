package companystore_test

import (
	"fmt"
	"sync"
	"testing"

	companystore "github.com/dalemusser/propertyhub/internal/app/store/company"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/dalemusser/propertyhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStore_Get_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := companystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Get(ctx); err != companystore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_SaveKeepsLogo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := companystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Save(ctx, models.Company{Description: "v1", Logo: "logo.png"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	saved, err := store.Save(ctx, models.Company{Description: "v2", Email: "hi@example.com"})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if saved.ID != models.CompanyID {
		t.Errorf("ID: got %q", saved.ID)
	}
	if saved.Description != "v2" || saved.Email != "hi@example.com" {
		t.Errorf("unexpected company: %+v", saved)
	}
	if saved.Logo != "logo.png" {
		t.Errorf("Logo should be kept, got %q", saved.Logo)
	}

	got, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Description != "v2" {
		t.Errorf("Get Description: got %q", got.Description)
	}
}

func TestStore_Save_ConcurrentFirstSaves(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := companystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := store.Save(ctx, models.Company{Description: fmt.Sprintf("writer %d", i)}); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("Save failed: %v", err)
	}

	n, err := db.Collection("company").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected exactly 1 company document, got %d", n)
	}
}
