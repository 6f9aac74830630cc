// Package storage implements the SQLite persistence layer. All SQL
// lives here; callers receive core types and taxonomy errors, never
// driver details.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fincheck/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (creating if needed) the database, runs
// migrations and returns a ready repository. Foreign keys are enabled
// on every connection so referential integrity is a single atomic
// insert, not a check-then-act in the handlers.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := "file:" + dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// ---- users ----

func (r *SQLiteRepository) CreateUser(ctx context.Context, u core.User) (core.User, error) {
	now := time.Now().UTC()
	var email any
	if u.Email != "" {
		email = u.Email
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, email, role, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.Name, email, string(u.Role), u.PasswordHash, now.Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return core.User{}, fmt.Errorf("%w: email %q already in use", core.ErrConflict, u.Email)
		}
		return core.User{}, fmt.Errorf("create user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.User{}, fmt.Errorf("create user id: %w", err)
	}
	u.ID = id
	u.CreatedAt = now

	slog.InfoContext(ctx, "User created", "id", u.ID, "role", u.Role)
	return u, nil
}

const userColumns = `id, name, COALESCE(email, ''), role, password_hash, created_at`

func scanUser(row interface{ Scan(...any) error }) (core.User, error) {
	var u core.User
	var role string
	var createdAt int64
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &role, &u.PasswordHash, &createdAt); err != nil {
		return core.User{}, err
	}
	u.Role = core.Role(role)
	u.CreatedAt = time.Unix(createdAt, 0).UTC()
	return u, nil
}

func (r *SQLiteRepository) GetUserByID(ctx context.Context, id int64) (core.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return core.User{}, fmt.Errorf("%w: user %d", core.ErrNotFound, id)
	}
	if err != nil {
		return core.User{}, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

func (r *SQLiteRepository) GetUserByEmail(ctx context.Context, email string) (core.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return core.User{}, fmt.Errorf("%w: no user with that email", core.ErrNotFound)
	}
	if err != nil {
		return core.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (r *SQLiteRepository) UpdateUserPassword(ctx context.Context, id int64, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update user password: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: user %d", core.ErrNotFound, id)
	}
	return nil
}

// ListUsers returns users newest first, optionally filtered by exact
// role and by a case-insensitive substring of name or email.
func (r *SQLiteRepository) ListUsers(ctx context.Context, role core.Role, search string) ([]core.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	var conds []string
	var args []any
	if role != "" {
		conds = append(conds, `role = ?`)
		args = append(args, string(role))
	}
	if search != "" {
		conds = append(conds, `(lower(name) LIKE '%' || lower(?) || '%' OR lower(COALESCE(email, '')) LIKE '%' || lower(?) || '%')`)
		args = append(args, search, search)
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []core.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users rows: %w", err)
	}
	return users, nil
}

// ---- categories ----

func (r *SQLiteRepository) CreateCategory(ctx context.Context, c core.Category) (core.Category, error) {
	now := time.Now().UTC()
	var meta any
	if len(c.Meta) > 0 {
		meta = string(c.Meta)
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (name, parent_id, meta, created_at) VALUES (?, ?, ?, ?)`,
		c.Name, c.ParentID, meta, now.Unix())
	if err != nil {
		if isForeignKeyViolation(err) {
			return core.Category{}, core.Invalid("parent category not found")
		}
		return core.Category{}, fmt.Errorf("create category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Category{}, fmt.Errorf("create category id: %w", err)
	}
	c.ID = id
	c.CreatedAt = now
	c.Subcategories = []core.Category{}

	slog.InfoContext(ctx, "Category created", "id", c.ID, "name", c.Name, "parent_id", c.ParentID)
	return c, nil
}

// ListCategories returns every category ordered by name, each with its
// direct subcategories attached (also name-ordered).
func (r *SQLiteRepository) ListCategories(ctx context.Context) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, parent_id, COALESCE(meta, ''), created_at FROM categories ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	cats := []core.Category{}
	for rows.Next() {
		var c core.Category
		var meta string
		var createdAt int64
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID, &meta, &createdAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		if meta != "" {
			c.Meta = []byte(meta)
		}
		c.CreatedAt = time.Unix(createdAt, 0).UTC()
		c.Subcategories = []core.Category{}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories rows: %w", err)
	}

	// Attach children; rows are already name-ordered so each
	// subcategory slice stays sorted.
	byID := make(map[int64]int, len(cats))
	for i, c := range cats {
		byID[c.ID] = i
	}
	for _, c := range cats {
		if c.ParentID == nil {
			continue
		}
		if pi, ok := byID[*c.ParentID]; ok {
			child := c
			child.Subcategories = nil
			cats[pi].Subcategories = append(cats[pi].Subcategories, child)
		}
	}
	return cats, nil
}

func (r *SQLiteRepository) GetCategory(ctx context.Context, id int64) (core.Category, error) {
	var c core.Category
	var meta string
	var createdAt int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, parent_id, COALESCE(meta, ''), created_at FROM categories WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.ParentID, &meta, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Category{}, fmt.Errorf("%w: category %d", core.ErrNotFound, id)
	}
	if err != nil {
		return core.Category{}, fmt.Errorf("get category: %w", err)
	}
	if meta != "" {
		c.Meta = []byte(meta)
	}
	c.CreatedAt = time.Unix(createdAt, 0).UTC()
	c.Subcategories = []core.Category{}
	return c, nil
}

// ---- invoices ----

func (r *SQLiteRepository) CreateInvoice(ctx context.Context, inv core.Invoice) (core.Invoice, error) {
	now := time.Now().UTC()
	var issuedAt any
	if !inv.IssuedAt.IsZero() {
		issuedAt = inv.IssuedAt.Unix()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO invoices (invoice_number, vendor, issued_at, created_at) VALUES (?, ?, ?, ?)`,
		inv.InvoiceNumber, inv.Vendor, issuedAt, now.Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return core.Invoice{}, fmt.Errorf("%w: invoice number %q already exists", core.ErrConflict, inv.InvoiceNumber)
		}
		return core.Invoice{}, fmt.Errorf("create invoice: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Invoice{}, fmt.Errorf("create invoice id: %w", err)
	}
	inv.ID = id
	inv.CreatedAt = now
	return inv, nil
}

func (r *SQLiteRepository) GetInvoice(ctx context.Context, id int64) (core.Invoice, error) {
	var inv core.Invoice
	var issuedAt sql.NullInt64
	var createdAt int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id, invoice_number, vendor, issued_at, created_at FROM invoices WHERE id = ?`, id).
		Scan(&inv.ID, &inv.InvoiceNumber, &inv.Vendor, &issuedAt, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Invoice{}, fmt.Errorf("%w: invoice %d", core.ErrNotFound, id)
	}
	if err != nil {
		return core.Invoice{}, fmt.Errorf("get invoice: %w", err)
	}
	if issuedAt.Valid {
		inv.IssuedAt = core.Date{Time: time.Unix(issuedAt.Int64, 0).UTC()}
	}
	inv.CreatedAt = time.Unix(createdAt, 0).UTC()
	return inv, nil
}

func (r *SQLiteRepository) ListInvoices(ctx context.Context) ([]core.Invoice, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, invoice_number, vendor, issued_at, created_at FROM invoices ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	invoices := []core.Invoice{}
	for rows.Next() {
		var inv core.Invoice
		var issuedAt sql.NullInt64
		var createdAt int64
		if err := rows.Scan(&inv.ID, &inv.InvoiceNumber, &inv.Vendor, &issuedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		if issuedAt.Valid {
			inv.IssuedAt = core.Date{Time: time.Unix(issuedAt.Int64, 0).UTC()}
		}
		inv.CreatedAt = time.Unix(createdAt, 0).UTC()
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list invoices rows: %w", err)
	}
	return invoices, nil
}

// ---- transactions ----

// TransactionFilter narrows ListTransactions. Zero fields are ignored;
// Limit falls back to DefaultTransactionLimit and is capped at it.
type TransactionFilter struct {
	UserID     int64
	CategoryID int64
	From       core.Date
	To         core.Date
	Limit      int
}

// DefaultTransactionLimit caps the "all transactions" views.
const DefaultTransactionLimit = 1000

const transactionColumns = `id, type, amount_cents, date, category_id, subcategory_id, invoice_id,
	note, employee, reference, created_by_id, created_at`

func scanTransaction(row interface{ Scan(...any) error }) (core.Transaction, error) {
	var t core.Transaction
	var typ string
	var date, createdAt int64
	err := row.Scan(&t.ID, &typ, &t.Amount.Cents, &date, &t.CategoryID, &t.SubcategoryID,
		&t.InvoiceID, &t.Note, &t.Employee, &t.Reference, &t.CreatedByID, &createdAt)
	if err != nil {
		return core.Transaction{}, err
	}
	t.Type = core.TransactionType(typ)
	t.Date = core.Date{Time: time.Unix(date, 0).UTC()}
	t.CreatedAt = time.Unix(createdAt, 0).UTC()
	return t, nil
}

func (r *SQLiteRepository) CreateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	now := time.Now().UTC()
	if t.Date.IsZero() {
		t.Date = core.Date{Time: now}
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions
			(type, amount_cents, date, category_id, subcategory_id, invoice_id,
			 note, employee, reference, created_by_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(t.Type), t.Amount.Cents, t.Date.Unix(), t.CategoryID, t.SubcategoryID,
		t.InvoiceID, t.Note, t.Employee, t.Reference, t.CreatedByID, now.Unix())
	if err != nil {
		if isForeignKeyViolation(err) {
			return core.Transaction{}, core.Invalid("referenced category, subcategory, invoice or user not found")
		}
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction id: %w", err)
	}
	t.ID = id
	t.CreatedAt = now

	slog.InfoContext(ctx, "Transaction created",
		"id", t.ID,
		"type", t.Type,
		"amount_cents", t.Amount.Cents,
		"category_id", t.CategoryID,
		"created_by_id", t.CreatedByID)
	return t, nil
}

func (r *SQLiteRepository) GetTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	t, err := scanTransaction(r.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, fmt.Errorf("%w: transaction %d", core.ErrNotFound, id)
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

func (r *SQLiteRepository) ListTransactions(ctx context.Context, f TransactionFilter) ([]core.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions`
	var conds []string
	var args []any
	if f.UserID > 0 {
		conds = append(conds, `created_by_id = ?`)
		args = append(args, f.UserID)
	}
	if f.CategoryID > 0 {
		conds = append(conds, `(category_id = ? OR subcategory_id = ?)`)
		args = append(args, f.CategoryID, f.CategoryID)
	}
	if !f.From.IsZero() {
		conds = append(conds, `date >= ?`)
		args = append(args, f.From.Unix())
	}
	if !f.To.IsZero() {
		conds = append(conds, `date <= ?`)
		args = append(args, f.To.Unix())
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	limit := f.Limit
	if limit <= 0 || limit > DefaultTransactionLimit {
		limit = DefaultTransactionLimit
	}
	query += ` ORDER BY date DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	txs := []core.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions rows: %w", err)
	}
	return txs, nil
}

// UpdateTransaction replaces every mutable column, bumps the version
// and re-queues the row for export.
func (r *SQLiteRepository) UpdateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	if t.Date.IsZero() {
		t.Date = core.Date{Time: time.Now().UTC()}
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET
			type = ?, amount_cents = ?, date = ?, category_id = ?, subcategory_id = ?,
			invoice_id = ?, note = ?, employee = ?, reference = ?,
			export_state = 'pending', version = version + 1
		 WHERE id = ?`,
		string(t.Type), t.Amount.Cents, t.Date.Unix(), t.CategoryID, t.SubcategoryID,
		t.InvoiceID, t.Note, t.Employee, t.Reference, t.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return core.Transaction{}, core.Invalid("referenced category, subcategory, invoice or user not found")
		}
		return core.Transaction{}, fmt.Errorf("update transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.Transaction{}, fmt.Errorf("%w: transaction %d", core.ErrNotFound, t.ID)
	}
	return r.GetTransaction(ctx, t.ID)
}

func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: transaction %d", core.ErrNotFound, id)
	}
	slog.InfoContext(ctx, "Transaction deleted", "id", id)
	return nil
}

// ---- reports ----

// TotalBalance sums credits and debits, optionally bounded by an
// inclusive date range, in one pass over the table.
func (r *SQLiteRepository) TotalBalance(ctx context.Context, from, to core.Date) (core.BalanceSummary, error) {
	query := `SELECT
		COALESCE(SUM(CASE WHEN type = 'credit' THEN amount_cents ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN type = 'debit' THEN amount_cents ELSE 0 END), 0)
	FROM transactions`
	var conds []string
	var args []any
	if !from.IsZero() {
		conds = append(conds, `date >= ?`)
		args = append(args, from.Unix())
	}
	if !to.IsZero() {
		conds = append(conds, `date <= ?`)
		args = append(args, to.Unix())
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}

	var summary core.BalanceSummary
	if err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&summary.TotalCredits.Cents, &summary.TotalDebits.Cents); err != nil {
		return core.BalanceSummary{}, fmt.Errorf("total balance: %w", err)
	}
	summary.Balance.Cents = summary.TotalCredits.Cents - summary.TotalDebits.Cents
	return summary, nil
}

// UserExpenses groups the filtered transactions by creator and type
// and reshapes into one summary per user. Output order follows the
// first appearance of each creator in the grouped result.
func (r *SQLiteRepository) UserExpenses(ctx context.Context, userID int64, from, to core.Date) ([]core.UserExpenseSummary, error) {
	query := `SELECT created_by_id, type, COALESCE(SUM(amount_cents), 0) FROM transactions`
	var conds []string
	var args []any
	if userID > 0 {
		conds = append(conds, `created_by_id = ?`)
		args = append(args, userID)
	}
	if !from.IsZero() {
		conds = append(conds, `date >= ?`)
		args = append(args, from.Unix())
	}
	if !to.IsZero() {
		conds = append(conds, `date <= ?`)
		args = append(args, to.Unix())
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` GROUP BY created_by_id, type ORDER BY created_by_id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("user expenses: %w", err)
	}
	defer rows.Close()

	index := map[int64]int{}
	out := []core.UserExpenseSummary{}
	for rows.Next() {
		var uid, cents int64
		var typ string
		if err := rows.Scan(&uid, &typ, &cents); err != nil {
			return nil, fmt.Errorf("scan user expenses: %w", err)
		}
		i, ok := index[uid]
		if !ok {
			i = len(out)
			index[uid] = i
			out = append(out, core.UserExpenseSummary{UserID: uid})
		}
		switch core.TransactionType(typ) {
		case core.Credit:
			out[i].TotalCredit.Cents = cents
		case core.Debit:
			out[i].TotalDebit.Cents = cents
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user expenses rows: %w", err)
	}
	return out, nil
}

// ---- export queue ----

// PendingExport identifies a transaction waiting for ledger export.
type PendingExport struct {
	ID      int64
	Version int64
}

func (r *SQLiteRepository) PendingExports(ctx context.Context, limit int) ([]PendingExport, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, version FROM transactions WHERE export_state = 'pending' ORDER BY id ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("pending exports: %w", err)
	}
	defer rows.Close()

	var pending []PendingExport
	for rows.Next() {
		var p PendingExport
		if err := rows.Scan(&p.ID, &p.Version); err != nil {
			return nil, fmt.Errorf("scan pending export: %w", err)
		}
		pending = append(pending, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pending exports rows: %w", err)
	}
	return pending, nil
}

// ExportRow loads the denormalized form of a transaction for the
// report writer, with category and creator ids resolved to names.
func (r *SQLiteRepository) ExportRow(ctx context.Context, id int64) (core.ExportRow, error) {
	var row core.ExportRow
	var typ string
	var date int64
	var subcategory sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT t.id, t.version, t.type, t.amount_cents, t.date,
			c.name, sc.name, t.note, t.employee, t.reference, u.name
		 FROM transactions t
		 JOIN categories c ON c.id = t.category_id
		 LEFT JOIN categories sc ON sc.id = t.subcategory_id
		 JOIN users u ON u.id = t.created_by_id
		 WHERE t.id = ?`, id).
		Scan(&row.TransactionID, &row.Version, &typ, &row.Amount.Cents, &date,
			&row.Category, &subcategory, &row.Note, &row.Employee, &row.Reference, &row.CreatedBy)
	if errors.Is(err, sql.ErrNoRows) {
		return core.ExportRow{}, fmt.Errorf("%w: transaction %d", core.ErrNotFound, id)
	}
	if err != nil {
		return core.ExportRow{}, fmt.Errorf("export row: %w", err)
	}
	row.Type = core.TransactionType(typ)
	row.Date = core.Date{Time: time.Unix(date, 0).UTC()}
	row.Subcategory = subcategory.String
	return row, nil
}

func (r *SQLiteRepository) MarkExported(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET export_state = 'exported' WHERE id = ?`, id); err != nil {
		return fmt.Errorf("mark exported: %w", err)
	}
	slog.InfoContext(ctx, "Transaction marked exported", "id", id)
	return nil
}

func (r *SQLiteRepository) MarkExportError(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET export_state = 'error' WHERE id = ?`, id); err != nil {
		return fmt.Errorf("mark export error: %w", err)
	}
	slog.WarnContext(ctx, "Transaction marked with export error", "id", id)
	return nil
}
