package addresses_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/propertyhub/internal/app/features/addresses"
	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/dalemusser/propertyhub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) chi.Router {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	r := chi.NewRouter()
	addresses.MountRoutes(r, addresses.NewHandler(db, apierrors.NewErrorLogger(logger), logger))
	return r
}

func TestCreateUpdateList(t *testing.T) {
	r := newRouter(t)

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewJSONRequest(t, "POST", "/address", map[string]string{
		"firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com", "phone": "555",
		"address": "1 Way", "city": "London", "state": "LDN", "country": "UK", "zip": "N1",
	}))
	rec.AssertStatus(t, http.StatusCreated)

	rec = testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewJSONRequest(t, "PUT", "/address", map[string]string{
		"email": "ada@example.com", "city": "Cambridge",
	}))
	rec.AssertStatus(t, http.StatusOK)
	var a models.Address
	rec.DecodeJSON(t, &a)
	if a.City != "Cambridge" || a.Zip != "N1" {
		t.Errorf("unexpected address after update: %+v", a)
	}

	rec = testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewRequest("GET", "/address"))
	rec.AssertStatus(t, http.StatusOK)
	var all []models.Address
	rec.DecodeJSON(t, &all)
	if len(all) != 1 || all[0].City != "Cambridge" {
		t.Errorf("unexpected list: %+v", all)
	}
}

func TestCreate_Validation(t *testing.T) {
	r := newRouter(t)

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewJSONRequest(t, "POST", "/address", map[string]string{"email": "ada@example.com"}))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, `"field":"zip"`)
}

func TestUpdate_NotFound(t *testing.T) {
	r := newRouter(t)

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewJSONRequest(t, "PUT", "/address", map[string]string{
		"email": "nobody@example.com", "city": "Nowhere",
	}))
	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, `"error":"Address not found for the provided email"`)
}
