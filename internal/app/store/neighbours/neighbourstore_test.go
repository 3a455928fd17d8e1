package neighbourstore_test

import (
	"testing"

	neighbourstore "github.com/dalemusser/propertyhub/internal/app/store/neighbours"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/dalemusser/propertyhub/internal/testutil"
)

func TestStore_CreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := neighbourstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, title := range []string{"Park", "School"} {
		if _, err := store.Create(ctx, models.Neighbour{Title: title, Distance: "1 km", BannerImage: "b.jpg", InnerImage: "i.jpg"}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 || all[0].Title != "Park" || all[1].Title != "School" {
		t.Errorf("unexpected neighbours: %+v", all)
	}
}
