// Package memory is an in-process ReportWriter for development and
// tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"fincheck/internal/core"
)

type Store struct {
	mu   sync.Mutex
	rows []core.ExportRow
}

func New() *Store {
	return &Store{}
}

// Append records the row and returns a synthetic reference.
func (s *Store) Append(_ context.Context, row core.ExportRow) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, row)
	return fmt.Sprintf("mem:%d", len(s.rows)), nil
}

// Rows returns a copy of everything appended so far.
func (s *Store) Rows() []core.ExportRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.ExportRow, len(s.rows))
	copy(out, s.rows)
	return out
}
