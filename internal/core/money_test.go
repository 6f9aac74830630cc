package core

import (
	"encoding/json"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0", 0, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{"1.004", 100, true},
		{" 2.50 ", 250, true},
		{"50000", 5000000, true},
		{"1200.50", 120050, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyJSON(t *testing.T) {
	got, err := json.Marshal(Money{Cents: 120050})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(got) != "1200.5" {
		t.Fatalf("expected 1200.5, got %s", got)
	}

	cases := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{`1200.5`, 120050, true},
		{`"1200.50"`, 120050, true},
		{`"9,99"`, 999, true},
		{`0`, 0, true},
		{`null`, 0, true},
		{`-5`, 0, false},
		{`"nope"`, 0, false},
	}
	for _, tc := range cases {
		var m Money
		err := json.Unmarshal([]byte(tc.in), &m)
		if tc.ok {
			if err != nil || m.Cents != tc.cents {
				t.Fatalf("%s expected %d cents, got %d (err=%v)", tc.in, tc.cents, m.Cents, err)
			}
		} else if err == nil {
			t.Fatalf("%s expected error", tc.in)
		}
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: -1}).Validate(); err == nil {
		t.Fatal("negative amount expected error")
	}
	if err := (Money{Cents: 0}).Validate(); err != nil {
		t.Fatalf("zero amount should be valid: %v", err)
	}
}
