package core

import (
	"encoding/json"
	"strings"
	"time"
)

const (
	RoleEmployee   Role = "employee"
	RoleHR         Role = "hr"
	RoleAccountant Role = "accountant"
	RoleFounder    Role = "founder"
	RoleAdmin      Role = "admin"
)

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

type (
	Role string

	TransactionType string

	// Date wraps time.Time to accept both RFC3339 and plain
	// YYYY-MM-DD values on the wire.
	Date struct {
		time.Time
	}

	User struct {
		ID           int64     `json:"id"`
		Name         string    `json:"name"`
		Email        string    `json:"email,omitempty"`
		Role         Role      `json:"role"`
		PasswordHash string    `json:"-"`
		CreatedAt    time.Time `json:"createdAt"`
	}

	Category struct {
		ID            int64           `json:"id"`
		Name          string          `json:"name"`
		ParentID      *int64          `json:"parentId"`
		Meta          json.RawMessage `json:"meta,omitempty"`
		Subcategories []Category      `json:"subcategories"`
		CreatedAt     time.Time       `json:"createdAt"`
	}

	Transaction struct {
		ID            int64           `json:"id"`
		Type          TransactionType `json:"type"`
		Amount        Money           `json:"amount"`
		Date          Date            `json:"date"`
		CategoryID    int64           `json:"categoryId"`
		SubcategoryID *int64          `json:"subcategoryId"`
		InvoiceID     *int64          `json:"invoiceId"`
		Note          string          `json:"note,omitempty"`
		Employee      string          `json:"employee,omitempty"`
		Reference     string          `json:"reference,omitempty"`
		CreatedByID   int64           `json:"createdById"`
		CreatedAt     time.Time       `json:"createdAt"`
	}

	Invoice struct {
		ID            int64     `json:"id"`
		InvoiceNumber string    `json:"invoiceNumber"`
		Vendor        string    `json:"vendor,omitempty"`
		IssuedAt      Date      `json:"issuedAt"`
		CreatedAt     time.Time `json:"createdAt"`
	}
)

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleHR, RoleAccountant, RoleFounder, RoleAdmin:
		return true
	default:
		return false
	}
}

func (t TransactionType) Valid() bool {
	return t == Credit || t == Debit
}

const dateOnlyLayout = "2006-01-02"

// ParseDate parses an RFC3339 timestamp or a plain YYYY-MM-DD day.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return Date{Time: ts.UTC()}, nil
	}
	ts, err := time.Parse(dateOnlyLayout, s)
	if err != nil {
		return Date{}, Invalid("invalid date %q (want RFC3339 or YYYY-MM-DD)", s)
	}
	return Date{Time: ts.UTC()}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.UTC().Format(time.RFC3339))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return Invalid("invalid date: %v", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return Invalid("name required")
	}
	if !u.Role.Valid() {
		return Invalid("unknown role %q", u.Role)
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return Invalid("name required")
	}
	if c.ParentID != nil && *c.ParentID <= 0 {
		return Invalid("parentId must be a positive id")
	}
	return nil
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return Invalid("type must be credit or debit")
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if t.CategoryID <= 0 {
		return Invalid("categoryId required")
	}
	if t.CreatedByID <= 0 {
		return Invalid("createdById required")
	}
	if len(t.Note) > 500 {
		return Invalid("note too long (max 500 characters)")
	}
	return nil
}

func (i Invoice) Validate() error {
	if strings.TrimSpace(i.InvoiceNumber) == "" {
		return Invalid("invoiceNumber required")
	}
	return nil
}
