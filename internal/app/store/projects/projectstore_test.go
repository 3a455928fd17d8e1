package projectstore_test

import (
	"testing"

	projectstore "github.com/dalemusser/propertyhub/internal/app/store/projects"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/dalemusser/propertyhub/internal/testutil"
)

func TestStore_CreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := projectstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p, err := store.Create(ctx, models.UpcomingProject{
		ProjectName:    "Riverside",
		Type:           "apartments",
		NoOfApartments: 40,
		Investment:     1.5e6,
		File:           "riverside.pdf",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 1 || all[0].NoOfApartments != 40 {
		t.Errorf("unexpected projects: %+v", all)
	}
}
