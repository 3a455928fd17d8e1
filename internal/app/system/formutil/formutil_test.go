package formutil_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/propertyhub/internal/app/system/formutil"
	"github.com/dalemusser/propertyhub/internal/app/system/inputval"
	"github.com/dalemusser/propertyhub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultipartValues(t *testing.T) {
	req := testutil.NewMultipartRequest(t, http.MethodPost, "/listing",
		map[string]string{"title": "  Villa ", "price": "12.5", "bedrooms": "x", "description": ""},
		testutil.FilePart{Field: "files", Name: "a.png", ContentType: "image/png", Body: []byte("png")},
		testutil.FilePart{Field: "files", Name: "b.pdf", ContentType: "application/pdf", Body: []byte("%PDF")},
	)
	require.NoError(t, formutil.ParseMultipart(req, 1))

	var res inputval.Result
	assert.Equal(t, "Villa", formutil.String(req, "title"))
	assert.Equal(t, 12.5, formutil.Float(req, "price", "Price", &res))
	assert.Equal(t, 0, formutil.Int(req, "bedrooms", "Bedrooms", &res))
	assert.Equal(t, 0, formutil.Int(req, "bathrooms", "Bathrooms", &res))
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "bedrooms", res.Errors[0].Field)

	desc := formutil.Optional(req, "description")
	require.NotNil(t, desc)
	assert.Equal(t, "", *desc)
	assert.Nil(t, formutil.Optional(req, "city"))

	assert.Len(t, formutil.Files(req, "files"), 2)
	assert.Equal(t, "a.png", formutil.File(req, "files").Filename)
	assert.Nil(t, formutil.File(req, "file"))
}

func TestOptionalNumbers(t *testing.T) {
	req := testutil.NewMultipartRequest(t, http.MethodPut, "/listings/x",
		map[string]string{"price": "99", "area": "big"})
	require.NoError(t, formutil.ParseMultipart(req, 1))

	var res inputval.Result
	price := formutil.OptionalFloat(req, "price", "Price", &res)
	require.NotNil(t, price)
	assert.Equal(t, 99.0, *price)
	assert.Nil(t, formutil.OptionalFloat(req, "area", "Area", &res))
	assert.Nil(t, formutil.OptionalInt(req, "bedrooms", "Bedrooms", &res))
	assert.Len(t, res.Errors, 1)
}

func TestParseMultipart_URLEncoded(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/company", strings.NewReader("email=a%40b.c"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, formutil.ParseMultipart(req, 1))
	assert.Equal(t, "a@b.c", formutil.String(req, "email"))
	assert.Nil(t, formutil.File(req, "file"))
	assert.Equal(t, []string{"a@b.c"}, formutil.Values(req)["email"])
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Email string `json:"email"`
	}
	req := httptest.NewRequest(http.MethodPost, "/subscribe", strings.NewReader(`{"email":"a@b.c"}`))
	require.NoError(t, formutil.DecodeJSON(httptest.NewRecorder(), req, &v))
	assert.Equal(t, "a@b.c", v.Email)

	req = httptest.NewRequest(http.MethodPost, "/subscribe", strings.NewReader(""))
	assert.ErrorIs(t, formutil.DecodeJSON(httptest.NewRecorder(), req, &v), formutil.ErrEmptyBody)

	req = httptest.NewRequest(http.MethodPost, "/subscribe", strings.NewReader("{"))
	assert.Error(t, formutil.DecodeJSON(httptest.NewRecorder(), req, &v))
}
