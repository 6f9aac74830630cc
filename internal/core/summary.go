package core

// BalanceSummary is the company-wide aggregate: credits in, debits
// out, balance = credits - debits.
type BalanceSummary struct {
	TotalCredits Money `json:"totalCredits"`
	TotalDebits  Money `json:"totalDebits"`
	Balance      Money `json:"balance"`
}

// UserExpenseSummary holds the per-creator credit/debit sums produced
// by the user-expenses report. One row per distinct creator in the
// filtered set.
type UserExpenseSummary struct {
	UserID      int64 `json:"userId"`
	TotalCredit Money `json:"totalCredit"`
	TotalDebit  Money `json:"totalDebit"`
}

// ExportRow is the denormalized form of a transaction handed to a
// report writer: ids resolved to names so the sheet is readable on its
// own.
type ExportRow struct {
	TransactionID int64
	Version       int64
	Type          TransactionType
	Amount        Money
	Date          Date
	Category      string
	Subcategory   string
	Note          string
	Employee      string
	Reference     string
	CreatedBy     string
}
