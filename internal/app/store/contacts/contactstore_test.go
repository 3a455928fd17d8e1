package contactstore_test

import (
	"testing"

	contactstore "github.com/dalemusser/propertyhub/internal/app/store/contacts"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/dalemusser/propertyhub/internal/testutil"
)

func TestStore_CreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.ContactForm{Name: "Ann", Email: "ann@example.com", Message: "Call me"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 1 || all[0].Message != "Call me" {
		t.Errorf("unexpected contacts: %+v", all)
	}
}
