package http

import (
	"net/url"
	"strings"
	"testing"
)

func TestParseDateRange(t *testing.T) {
	query := url.Values{"from": {"2024-01-01"}, "to": {"2024-12-31T23:59:59Z"}}
	from, to, err := parseDateRange(query)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if from.IsZero() || to.IsZero() {
		t.Fatal("both bounds should be set")
	}
	if !from.Before(to.Time) {
		t.Fatal("from should precede to")
	}

	if _, _, err := parseDateRange(url.Values{"from": {"not-a-date"}}); err == nil {
		t.Fatal("bad date expected error")
	}

	from, to, err = parseDateRange(url.Values{})
	if err != nil || !from.IsZero() || !to.IsZero() {
		t.Fatalf("empty query should yield zero bounds, got %v %v (err=%v)", from, to, err)
	}
}

func TestParseOptionalID(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"", 0, true},
		{"7", 7, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, err := parseOptionalID(url.Values{"userId": {tc.in}}, "userId")
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else if err == nil {
			t.Fatalf("%q expected error", tc.in)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"  hello  ", "hello"},
		{"line1\nline2", "line1\nline2"},
		{"null\x00byte", "nullbyte"},
		{"bell\x07ring", "bellring"},
	}
	for _, tc := range cases {
		if got := sanitizeInput(tc.in); got != tc.out {
			t.Fatalf("%q expected %q, got %q", tc.in, tc.out, got)
		}
	}
}

func TestGenerateRequestID(t *testing.T) {
	a, b := generateRequestID(), generateRequestID()
	if !strings.HasPrefix(a, "req_") {
		t.Fatalf("unexpected prefix: %s", a)
	}
	if a == b {
		t.Fatal("request ids must be unique")
	}
}
