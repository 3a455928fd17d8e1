// Package formutil reads request bodies: multipart forms with file parts,
// and size-limited JSON.
//
// Handlers parse once and then pull typed values:
//
//	if err := formutil.ParseMultipart(r, h.MaxUploadMB); err != nil { ... }
//	var res inputval.Result
//	price := formutil.Float(r, "price", "Price", &res)
//	files := formutil.Files(r, "files")
package formutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/propertyhub/internal/app/system/inputval"
	"github.com/dalemusser/propertyhub/internal/app/system/limits"
)

// ErrEmptyBody is returned by DecodeJSON when the body has no content.
var ErrEmptyBody = errors.New("request body is empty")

// ParseMultipart parses a multipart body keeping up to maxMB in memory.
// A request that is not multipart parses as an ordinary form so optional
// upload endpoints also accept urlencoded bodies.
func ParseMultipart(r *http.Request, maxMB int64) error {
	if maxMB <= 0 {
		maxMB = limits.DefaultUploadMB
	}
	err := r.ParseMultipartForm(maxMB << 20)
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}
	return err
}

// String returns the trimmed value of name, or "".
func String(r *http.Request, name string) string {
	return strings.TrimSpace(r.FormValue(name))
}

// Optional returns a pointer to the trimmed value when name was sent at all,
// and nil when it was absent. A present empty value yields a pointer to "".
func Optional(r *http.Request, name string) *string {
	if !present(r, name) {
		return nil
	}
	v := String(r, name)
	return &v
}

// Int parses name as an integer. A blank value yields 0. A malformed value
// is recorded on res under label.
func Int(r *http.Request, name, label string, res *inputval.Result) int {
	s := String(r, name)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		res.Add(name, label+" must be a whole number.")
		return 0
	}
	return n
}

// Float parses name as a number. A blank value yields 0. A malformed value
// is recorded on res under label.
func Float(r *http.Request, name, label string, res *inputval.Result) float64 {
	s := String(r, name)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		res.Add(name, label+" must be a number.")
		return 0
	}
	return f
}

// OptionalInt is Int for partial updates: nil when name is absent or blank.
func OptionalInt(r *http.Request, name, label string, res *inputval.Result) *int {
	if String(r, name) == "" {
		return nil
	}
	before := len(res.Errors)
	n := Int(r, name, label, res)
	if len(res.Errors) > before {
		return nil
	}
	return &n
}

// OptionalFloat is Float for partial updates: nil when name is absent or blank.
func OptionalFloat(r *http.Request, name, label string, res *inputval.Result) *float64 {
	if String(r, name) == "" {
		return nil
	}
	before := len(res.Errors)
	f := Float(r, name, label, res)
	if len(res.Errors) > before {
		return nil
	}
	return &f
}

// Files returns the file parts sent under field.
func Files(r *http.Request, field string) []*multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	return r.MultipartForm.File[field]
}

// File returns the first file part sent under field, or nil.
func File(r *http.Request, field string) *multipart.FileHeader {
	if fhs := Files(r, field); len(fhs) > 0 {
		return fhs[0]
	}
	return nil
}

// Values returns the parsed form values, for helpers that read several
// fields at once.
func Values(r *http.Request) map[string][]string {
	if r.MultipartForm != nil {
		return r.MultipartForm.Value
	}
	return r.Form
}

// DecodeJSON decodes a JSON body of at most limits.MaxJSONBody bytes into v.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, limits.MaxJSONBody)
	err := json.NewDecoder(body).Decode(v)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return ErrEmptyBody
	default:
		return fmt.Errorf("decode json: %w", err)
	}
}

func present(r *http.Request, name string) bool {
	if r.MultipartForm != nil {
		if _, ok := r.MultipartForm.Value[name]; ok {
			return true
		}
	}
	_, ok := r.Form[name]
	return ok
}
