package company_test

import (
	"net/http"
	"sync"
	"testing"

	"github.com/dalemusser/propertyhub/internal/app/features/company"
	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	"github.com/dalemusser/propertyhub/internal/app/system/uploads"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/dalemusser/propertyhub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) (chi.Router, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	store := uploads.New(afero.NewMemMapFs(), "/uploads")
	require.NoError(t, store.EnsureDir())

	r := chi.NewRouter()
	company.MountRoutes(r, company.NewHandler(db, store, 1, apierrors.NewErrorLogger(logger), logger))
	return r, db
}

func TestGet_NotFound(t *testing.T) {
	r, _ := newRouter(t)

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewRequest("GET", "/company"))
	rec.AssertStatus(t, http.StatusNotFound)
	assert.JSONEq(t, `{"message":"Company details not found"}`, rec.Body.String())
}

func TestSaveAndGet_KeepsLogo(t *testing.T) {
	r, _ := newRouter(t)

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewMultipartRequest(t, "POST", "/company",
		map[string]string{"description": "We sell homes", "email": "info@example.com"},
		testutil.FilePart{Field: "file", Name: "logo.png", ContentType: "image/png", Body: []byte("png")},
	))
	rec.AssertStatus(t, http.StatusOK)

	rec = testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewMultipartRequest(t, "POST", "/company",
		map[string]string{"description": "We sell more homes", "email": "info@example.com"}))
	rec.AssertStatus(t, http.StatusOK)

	rec = testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewRequest("GET", "/company"))
	rec.AssertStatus(t, http.StatusOK)
	var c models.Company
	rec.DecodeJSON(t, &c)
	assert.Equal(t, "We sell more homes", c.Description)
	assert.Equal(t, "logo.png", c.Logo)
}

func TestSave_ConcurrentFirstSaves(t *testing.T) {
	r, db := newRouter(t)

	reqs := make([]*http.Request, 6)
	for i := range reqs {
		reqs[i] = testutil.NewMultipartRequest(t, "POST", "/company", map[string]string{"description": "racer"})
	}

	var wg sync.WaitGroup
	codes := make([]int, len(reqs))
	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req *http.Request) {
			defer wg.Done()
			rec := testutil.NewRecorder()
			r.ServeHTTP(rec, req)
			codes[i] = rec.Code
		}(i, req)
	}
	wg.Wait()

	for i, code := range codes {
		assert.Equal(t, http.StatusOK, code, "request %d", i)
	}
	ctx, cancel := testutil.TestContext()
	defer cancel()
	n, err := db.Collection("company").CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
