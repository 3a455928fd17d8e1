package commentstore_test

import (
	"sync"
	"testing"

	commentstore "github.com/dalemusser/propertyhub/internal/app/store/comments"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/dalemusser/propertyhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_CreateAndListByBlog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := commentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	blogID := primitive.NewObjectID()
	c, err := store.Create(ctx, models.Comment{BlogID: blogID, Name: "Ann", Email: "ann@example.com", Content: "Hi"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if c.Replies == nil || len(c.Replies) != 0 {
		t.Errorf("expected empty replies, got %v", c.Replies)
	}

	got, err := store.ListByBlog(ctx, blogID)
	if err != nil {
		t.Fatalf("ListByBlog failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != c.ID {
		t.Errorf("unexpected comments: %+v", got)
	}
}

func TestStore_AddReply(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := commentstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	blog := fixtures.CreateBlog(ctx, "Post")
	c := fixtures.CreateComment(ctx, blog.ID, "Ann")

	reply, err := store.AddReply(ctx, c.ID, models.Reply{Name: "Bob", Email: "bob@example.com", Content: "Agreed"})
	if err != nil {
		t.Fatalf("AddReply failed: %v", err)
	}
	if reply.Date.IsZero() {
		t.Error("expected reply date to be set")
	}

	got, err := store.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Replies) != 1 || got.Replies[0].Name != "Bob" {
		t.Errorf("unexpected replies: %+v", got.Replies)
	}
}

func TestStore_AddReply_Concurrent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := commentstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	c := fixtures.CreateComment(ctx, primitive.NewObjectID(), "Ann")

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.AddReply(ctx, c.ID, models.Reply{Name: "r", Email: "r@example.com", Content: "x"}); err != nil {
				t.Errorf("AddReply failed: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := store.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Replies) != n {
		t.Errorf("expected %d replies, got %d", n, len(got.Replies))
	}
}

func TestStore_AddReply_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := commentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.AddReply(ctx, primitive.NewObjectID(), models.Reply{Name: "x", Email: "x@example.com", Content: "x"})
	if err != commentstore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
