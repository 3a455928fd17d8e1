package projects_test

import (
	"net/http"
	"testing"

	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	"github.com/dalemusser/propertyhub/internal/app/features/projects"
	"github.com/dalemusser/propertyhub/internal/app/system/uploads"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/dalemusser/propertyhub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) (chi.Router, *uploads.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	store := uploads.New(afero.NewMemMapFs(), "/uploads")
	require.NoError(t, store.EnsureDir())

	r := chi.NewRouter()
	projects.MountRoutes(r, projects.NewHandler(db, store, 1, apierrors.NewErrorLogger(logger), logger))
	return r, store
}

func validFields() map[string]string {
	return map[string]string{
		"projectName":    "Harbour View",
		"type":           "Residential",
		"address":        "1 Quay St",
		"noOfApartments": "48",
		"investment":     "12500000.5",
	}
}

func TestCreateAndList(t *testing.T) {
	r, store := newRouter(t)

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewMultipartRequest(t, "POST", "/upcoming-projects", validFields(),
		testutil.FilePart{Field: "file", Name: "brochure.pdf", ContentType: "application/pdf", Body: []byte("%PDF")},
	))
	rec.AssertStatus(t, http.StatusCreated)
	assert.JSONEq(t, `{"message":"Upcoming project added successfully!"}`, rec.Body.String())
	assert.True(t, store.Exists("brochure.pdf"))

	rec = testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewRequest("GET", "/upcoming-projects"))
	rec.AssertStatus(t, http.StatusOK)
	var all []models.UpcomingProject
	rec.DecodeJSON(t, &all)
	require.Len(t, all, 1)
	assert.Equal(t, "Harbour View", all[0].ProjectName)
	assert.Equal(t, 48, all[0].NoOfApartments)
	assert.InDelta(t, 12500000.5, all[0].Investment, 0.001)
	assert.Equal(t, "brochure.pdf", all[0].File)
}

func TestCreate_MissingFile(t *testing.T) {
	r, _ := newRouter(t)

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewMultipartRequest(t, "POST", "/upcoming-projects", validFields()))
	rec.AssertStatus(t, http.StatusBadRequest)
	assert.JSONEq(t, `{"message":"All fields are required!"}`, rec.Body.String())
}

func TestCreate_MissingField(t *testing.T) {
	r, store := newRouter(t)

	fields := validFields()
	delete(fields, "type")
	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewMultipartRequest(t, "POST", "/upcoming-projects", fields,
		testutil.FilePart{Field: "file", Name: "brochure.pdf", ContentType: "application/pdf", Body: []byte("%PDF")},
	))
	rec.AssertStatus(t, http.StatusBadRequest)
	assert.False(t, store.Exists("brochure.pdf"))
}

func TestCreate_BadNumber(t *testing.T) {
	r, _ := newRouter(t)

	fields := validFields()
	fields["noOfApartments"] = "lots"
	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewMultipartRequest(t, "POST", "/upcoming-projects", fields,
		testutil.FilePart{Field: "file", Name: "brochure.pdf", ContentType: "application/pdf", Body: []byte("%PDF")},
	))
	rec.AssertStatus(t, http.StatusBadRequest)
}
