package memory

import (
	"context"
	"testing"

	"fincheck/internal/core"
)

func TestAppendAndRows(t *testing.T) {
	s := New()

	ref, err := s.Append(context.Background(), core.ExportRow{TransactionID: 1, Category: "Office"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if ref != "mem:1" {
		t.Fatalf("expected ref mem:1, got %s", ref)
	}

	ref, _ = s.Append(context.Background(), core.ExportRow{TransactionID: 2})
	if ref != "mem:2" {
		t.Fatalf("expected ref mem:2, got %s", ref)
	}

	rows := s.Rows()
	if len(rows) != 2 || rows[0].TransactionID != 1 || rows[1].TransactionID != 2 {
		t.Fatalf("unexpected rows %+v", rows)
	}

	// Rows returns a copy; mutating it must not touch the store.
	rows[0].Category = "changed"
	if s.Rows()[0].Category != "Office" {
		t.Fatal("Rows must return a copy")
	}
}
