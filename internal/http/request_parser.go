package http

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fincheck/internal/core"
)

const maxBodyBytes = 1 << 20 // 1MB

// decodeJSON reads and decodes a JSON request body. Every failure is a
// validation error; unknown fields are rejected to catch client typos.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return core.Invalid("invalid request body: %v", err)
	}
	return nil
}

// pathID extracts a positive integer {id} path value.
func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, core.Invalid("invalid id %q", raw)
	}
	return id, nil
}

// parseDateRange reads optional from/to query parameters. Both accept
// RFC3339 or YYYY-MM-DD; the bounds are inclusive.
func parseDateRange(query url.Values) (from, to core.Date, err error) {
	if v := strings.TrimSpace(query.Get("from")); v != "" {
		from, err = core.ParseDate(v)
		if err != nil {
			return core.Date{}, core.Date{}, err
		}
	}
	if v := strings.TrimSpace(query.Get("to")); v != "" {
		to, err = core.ParseDate(v)
		if err != nil {
			return core.Date{}, core.Date{}, err
		}
	}
	return from, to, nil
}

// parseOptionalID reads an optional positive integer query parameter.
func parseOptionalID(query url.Values, key string) (int64, error) {
	v := strings.TrimSpace(query.Get(key))
	if v == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, core.Invalid("invalid %s %q", key, v)
	}
	return id, nil
}

func parseLimit(query url.Values) (int, error) {
	v := strings.TrimSpace(query.Get("limit"))
	if v == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(v)
	if err != nil || limit <= 0 {
		return 0, core.Invalid("invalid limit %q", v)
	}
	return limit, nil
}

// sanitizeInput trims whitespace and strips control characters except
// tab, newline and carriage return.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// generateRequestID creates a unique request id for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}
