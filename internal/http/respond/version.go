package respond

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

var ErrBadIfMatch = errors.New("invalid If-Match header, expected a quoted application version")

// ETag advertises the application version so clients can send it back in If-Match.
func ETag(w http.ResponseWriter, version int) {
	w.Header().Set("ETag", strconv.Quote(strconv.Itoa(version)))
}

// IfMatch returns the version from the If-Match header, or nil when the header is absent or "*".
func IfMatch(r *http.Request) (*int, error) {
	raw := strings.TrimSpace(r.Header.Get("If-Match"))
	if raw == "" || raw == "*" {
		return nil, nil
	}

	raw = strings.TrimPrefix(raw, "W/")
	raw = strings.Trim(raw, `"`)

	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return nil, ErrBadIfMatch
	}

	return &v, nil
}
