package core

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleEmployee, RoleHR, RoleAccountant, RoleFounder, RoleAdmin} {
		if !r.Valid() {
			t.Fatalf("%q should be valid", r)
		}
	}
	for _, r := range []Role{"", "manager", "EMPLOYEE"} {
		if r.Valid() {
			t.Fatalf("%q should be invalid", r)
		}
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"2024-03-15T10:30:00Z", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), true},
		{"2024-03-15T10:30:00+02:00", time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC), true},
		{"15/03/2024", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if tc.ok {
			if err != nil || !got.Equal(tc.want) {
				t.Fatalf("%q expected %v, got %v (err=%v)", tc.in, tc.want, got.Time, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("%q expected ErrInvalidInput, got %v", tc.in, err)
			}
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2024-03-15"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2024-03-15T00:00:00Z"` {
		t.Fatalf("unexpected output %s", out)
	}

	var zero Date
	out, _ = json.Marshal(zero)
	if string(out) != "null" {
		t.Fatalf("zero date should marshal to null, got %s", out)
	}
}

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{
		Type:        Debit,
		Amount:      Money{Cents: 999},
		CategoryID:  1,
		CreatedByID: 1,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid transaction rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Transaction)
	}{
		{"bad type", func(tx *Transaction) { tx.Type = "transfer" }},
		{"negative amount", func(tx *Transaction) { tx.Amount = Money{Cents: -1} }},
		{"missing category", func(tx *Transaction) { tx.CategoryID = 0 }},
		{"missing creator", func(tx *Transaction) { tx.CreatedByID = 0 }},
		{"long note", func(tx *Transaction) { tx.Note = string(make([]byte, 501)) }},
	}
	for _, tc := range cases {
		tx := valid
		tc.mutate(&tx)
		err := tx.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestUserValidate(t *testing.T) {
	if err := (User{Name: "Ada", Role: RoleFounder}).Validate(); err != nil {
		t.Fatalf("valid user rejected: %v", err)
	}
	if err := (User{Name: "  ", Role: RoleFounder}).Validate(); err == nil {
		t.Fatal("blank name expected error")
	}
	if err := (User{Name: "Ada", Role: "ceo"}).Validate(); err == nil {
		t.Fatal("unknown role expected error")
	}
}

func TestCategoryValidate(t *testing.T) {
	parent := int64(3)
	if err := (Category{Name: "Travel", ParentID: &parent}).Validate(); err != nil {
		t.Fatalf("valid category rejected: %v", err)
	}
	bad := int64(0)
	if err := (Category{Name: "Travel", ParentID: &bad}).Validate(); err == nil {
		t.Fatal("non-positive parentId expected error")
	}
	if err := (Category{Name: ""}).Validate(); err == nil {
		t.Fatal("blank name expected error")
	}
}
