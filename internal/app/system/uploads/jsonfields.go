// internal/app/system/uploads/jsonfields.go
package uploads

import (
	"encoding/json"
	"strings"
)

// InvalidJSONError names the first form field whose value is not a JSON array.
type InvalidJSONError struct {
	Field string
}

func (e *InvalidJSONError) Error() string {
	return "Invalid JSON for field: " + e.Field
}

// ParseJSONFields decodes the named form fields as JSON arrays, checking
// them in the order given. Fields that are absent or blank are left out of
// the result. The first field that fails to decode is reported as an
// *InvalidJSONError.
func ParseJSONFields(form map[string][]string, fields ...string) (map[string][]any, error) {
	out := make(map[string][]any, len(fields))
	for _, f := range fields {
		vals := form[f]
		if len(vals) == 0 || strings.TrimSpace(vals[0]) == "" {
			continue
		}
		var arr []any
		if err := json.Unmarshal([]byte(vals[0]), &arr); err != nil {
			return nil, &InvalidJSONError{Field: f}
		}
		if arr == nil {
			arr = []any{}
		}
		out[f] = arr
	}
	return out, nil
}
