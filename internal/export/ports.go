// Package export defines the ledger-export port and selects a backend
// for it.
package export

import (
	"context"

	"fincheck/internal/core"
)

// ReportWriter appends accepted transactions to an external report
// ledger. Implementations must be safe for concurrent use.
type ReportWriter interface {
	Append(ctx context.Context, row core.ExportRow) (ref string, err error)
}
