package accountdetails_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/propertyhub/internal/app/features/accountdetails"
	apierrors "github.com/dalemusser/propertyhub/internal/app/features/errors"
	"github.com/dalemusser/propertyhub/internal/app/system/uploads"
	"github.com/dalemusser/propertyhub/internal/domain/models"
	"github.com/dalemusser/propertyhub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) (chi.Router, afero.Fs) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	fs := afero.NewMemMapFs()
	store := uploads.New(fs, "/uploads")
	require.NoError(t, store.EnsureDir())

	r := chi.NewRouter()
	accountdetails.MountRoutes(r, accountdetails.NewHandler(db, store, 1, apierrors.NewErrorLogger(logger), logger))
	return r, fs
}

func fields(userID, phone string) map[string]string {
	return map[string]string{
		"userId": userID, "fname": "Ada", "lname": "Lovelace", "username": "ada",
		"email": "ada@example.com", "phone": phone, "address": "1 Analytical Way",
	}
}

func TestSave_UpsertKeepsImage(t *testing.T) {
	r, fs := newRouter(t)
	userID := primitive.NewObjectID().Hex()

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewMultipartRequest(t, "POST", "/account-details", fields(userID, "111"),
		testutil.FilePart{Field: "profileImage", Name: "ada.png", ContentType: "image/png", Body: []byte("png")},
	))
	rec.AssertStatus(t, http.StatusOK)
	var first models.AccountDetails
	rec.DecodeJSON(t, &first)
	assert.Equal(t, "ada.png", first.ProfileImage)
	ok, _ := afero.Exists(fs, "/uploads/ada.png")
	assert.True(t, ok)

	rec = testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewMultipartRequest(t, "POST", "/account-details", fields(userID, "222")))
	rec.AssertStatus(t, http.StatusOK)
	var second models.AccountDetails
	rec.DecodeJSON(t, &second)
	assert.Equal(t, first.ID, second.ID, "second save updates the same document")
	assert.Equal(t, "222", second.Phone)
	assert.Equal(t, "ada.png", second.ProfileImage)

	rec = testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewRequest("GET", "/account-details/"+userID))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"phone":"222"`)
}

func TestSave_Validation(t *testing.T) {
	r, fs := newRouter(t)

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewMultipartRequest(t, "POST", "/account-details",
		map[string]string{"userId": "nope", "fname": "Ada"},
		testutil.FilePart{Field: "profileImage", Name: "x.png", ContentType: "image/png", Body: []byte("png")},
	))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, `"field":"userId"`)
	rec.AssertContains(t, `"field":"email"`)
	ok, _ := afero.Exists(fs, "/uploads/x.png")
	assert.False(t, ok)
}

func TestGet_NotFound(t *testing.T) {
	r, _ := newRouter(t)

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewRequest("GET", "/account-details/"+primitive.NewObjectID().Hex()))
	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Account details not found")
}
