package uploads_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/dalemusser/propertyhub/internal/app/system/uploads"
	"github.com/dalemusser/propertyhub/internal/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*uploads.Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	s := uploads.New(fs, "/srv/uploads")
	require.NoError(t, s.EnsureDir())
	return s, fs
}

func TestStore_SaveExistsRemove(t *testing.T) {
	s, fs := newStore(t)

	name, err := s.Save("house.jpg", strings.NewReader("jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "house.jpg", name)
	assert.True(t, s.Exists("house.jpg"))

	data, err := afero.ReadFile(fs, "/srv/uploads/house.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(data))

	require.NoError(t, s.Remove("house.jpg", "missing.jpg"))
	assert.False(t, s.Exists("house.jpg"))
}

func TestStore_SaveOverwritesSameName(t *testing.T) {
	s, fs := newStore(t)

	_, err := s.Save("a.png", strings.NewReader("first"))
	require.NoError(t, err)
	_, err = s.Save("a.png", strings.NewReader("second"))
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "/srv/uploads/a.png")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestStore_SaveStripsDirectories(t *testing.T) {
	s, fs := newStore(t)

	name, err := s.Save("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "passwd", name)

	ok, err := afero.Exists(fs, "/srv/uploads/passwd")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_SaveRejectsEmptyName(t *testing.T) {
	s, _ := newStore(t)
	_, err := s.Save("", strings.NewReader("x"))
	assert.True(t, errors.Is(err, uploads.ErrBadName))
}

func TestStore_NamesAndPresent(t *testing.T) {
	s, _ := newStore(t)
	for _, n := range []string{"b.jpg", "a.jpg", "c.pdf"} {
		_, err := s.Save(n, strings.NewReader(n))
		require.NoError(t, err)
	}

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.pdf"}, names)

	present, err := s.Present([]string{"c.pdf", "gone.jpg", "a.jpg"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c.pdf", "a.jpg"}, present)
}

func TestClassify(t *testing.T) {
	files := testutil.FileHeaders(t,
		testutil.FilePart{Field: "files", Name: "front.jpg", ContentType: "image/jpeg", Body: []byte("1")},
		testutil.FilePart{Field: "files", Name: "plan.pdf", ContentType: "application/pdf", Body: []byte("2")},
		testutil.FilePart{Field: "files", Name: "back.png", ContentType: "image/png", Body: []byte("3")},
		testutil.FilePart{Field: "files", Name: "brochure.pdf", ContentType: "application/pdf", Body: []byte("4")},
		testutil.FilePart{Field: "files", Name: "notes.txt", ContentType: "text/plain", Body: []byte("5")},
	)

	c := uploads.Classify(files)
	assert.Equal(t, []string{"front.jpg", "back.png"}, c.Images)
	assert.Equal(t, "brochure.pdf", c.PDF, "last pdf wins")
	assert.Equal(t, []string{"notes.txt"}, c.Other)
}

func TestBatch_CommitAndRollback(t *testing.T) {
	s, _ := newStore(t)
	files := testutil.FileHeaders(t,
		testutil.FilePart{Field: "files", Name: "one.jpg", ContentType: "image/jpeg", Body: []byte("1")},
		testutil.FilePart{Field: "files", Name: "two.pdf", ContentType: "application/pdf", Body: []byte("2")},
	)

	b := s.NewBatch(files...)
	assert.Equal(t, 2, b.Len())
	require.NoError(t, b.Commit())
	assert.Equal(t, []string{"one.jpg", "two.pdf"}, b.Written())
	assert.True(t, s.Exists("one.jpg"))
	assert.True(t, s.Exists("two.pdf"))

	b.Rollback()
	assert.False(t, s.Exists("one.jpg"))
	assert.False(t, s.Exists("two.pdf"))
	assert.Empty(t, b.Written())
}

func TestBatch_CommitFailureRemovesWritten(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := uploads.New(fs, "/srv/uploads")
	require.NoError(t, s.EnsureDir())

	files := testutil.FileHeaders(t,
		testutil.FilePart{Field: "files", Name: "ok.jpg", ContentType: "image/jpeg", Body: []byte("1")},
	)
	require.NoError(t, s.NewBatch(files...).Commit())

	ro := uploads.New(afero.NewReadOnlyFs(fs), "/srv/uploads")
	more := testutil.FileHeaders(t,
		testutil.FilePart{Field: "files", Name: "new.jpg", ContentType: "image/jpeg", Body: []byte("2")},
	)
	b := ro.NewBatch(more...)
	assert.Error(t, b.Commit())
	assert.Empty(t, b.Written())
	assert.True(t, s.Exists("ok.jpg"), "unrelated files are untouched")
	assert.False(t, s.Exists("new.jpg"))
}

func TestBatch_RollbackRestoresReplacedUpload(t *testing.T) {
	s, fs := newStore(t)
	_, err := s.Save("front.jpg", strings.NewReader("original"))
	require.NoError(t, err)

	files := testutil.FileHeaders(t,
		testutil.FilePart{Field: "files", Name: "front.jpg", ContentType: "image/jpeg", Body: []byte("replacement")},
		testutil.FilePart{Field: "files", Name: "front.jpg", ContentType: "image/jpeg", Body: []byte("second")},
	)
	b := s.NewBatch(files...)
	require.NoError(t, b.Commit())

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"front.jpg"}, names, "set-aside copies are not listed")

	b.Rollback()
	got, err := afero.ReadFile(fs, "/srv/uploads/front.jpg")
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))

	entries, err := afero.ReadDir(fs, "/srv/uploads")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no set-aside copies remain")
}

func TestBatch_KeepDiscardsReplacedUpload(t *testing.T) {
	s, fs := newStore(t)
	_, err := s.Save("front.jpg", strings.NewReader("original"))
	require.NoError(t, err)

	b := s.NewBatch(testutil.FileHeaders(t,
		testutil.FilePart{Field: "files", Name: "front.jpg", ContentType: "image/jpeg", Body: []byte("replacement")},
	)...)
	require.NoError(t, b.Commit())
	b.Keep()
	b.Keep()

	got, err := afero.ReadFile(fs, "/srv/uploads/front.jpg")
	require.NoError(t, err)
	assert.Equal(t, "replacement", string(got))

	entries, err := afero.ReadDir(fs, "/srv/uploads")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "house.jpg", want: "house.jpg"},
		{in: "My House (1).JPG", want: "My House (1).JPG"},
		{in: "photos/house.jpg", want: "house.jpg"},
		{in: `C:\Users\me\house.jpg`, want: "house.jpg"},
		{in: "../../etc/passwd", want: "passwd"},
		{in: "..", wantErr: true},
		{in: "", wantErr: true},
		{in: "/", wantErr: true},
	}
	for _, tt := range tests {
		got, err := uploads.CleanName(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, uploads.ErrBadName, "CleanName(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "CleanName(%q)", tt.in)
		assert.Equal(t, tt.want, got, "CleanName(%q)", tt.in)
	}
}

func TestParseJSONFields(t *testing.T) {
	form := map[string][]string{
		"interiorDetails": {`["Fireplace", "Hardwood floors"]`},
		"utilities":       {`[{"name":"water","included":true}]`},
		"outdoorDetails":  {""},
	}

	got, err := uploads.ParseJSONFields(form, "interiorDetails", "outdoorDetails", "utilities", "otherFeatures")
	require.NoError(t, err)
	assert.Equal(t, []any{"Fireplace", "Hardwood floors"}, got["interiorDetails"])
	assert.Len(t, got["utilities"], 1)
	_, present := got["outdoorDetails"]
	assert.False(t, present, "blank field is skipped")
	_, present = got["otherFeatures"]
	assert.False(t, present, "absent field is skipped")
}

func TestParseJSONFields_Invalid(t *testing.T) {
	form := map[string][]string{
		"interiorDetails": {`["ok"]`},
		"outdoorDetails":  {`{not json`},
		"utilities":       {`also bad`},
	}

	_, err := uploads.ParseJSONFields(form, "interiorDetails", "outdoorDetails", "utilities")
	var jerr *uploads.InvalidJSONError
	require.True(t, errors.As(err, &jerr))
	assert.Equal(t, "outdoorDetails", jerr.Field)
	assert.Equal(t, "Invalid JSON for field: outdoorDetails", err.Error())
}

func TestParseJSONFields_ObjectIsNotArray(t *testing.T) {
	form := map[string][]string{"otherFeatures": {`{"pool": true}`}}
	_, err := uploads.ParseJSONFields(form, "otherFeatures")
	assert.EqualError(t, err, "Invalid JSON for field: otherFeatures")
}

func TestStore_Ready(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := uploads.New(fs, "/srv/uploads")
	assert.Error(t, s.Ready())

	require.NoError(t, s.EnsureDir())
	assert.NoError(t, s.Ready())
}
