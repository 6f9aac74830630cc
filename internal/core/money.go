// Package core holds the bookkeeping domain: entities, money handling
// and the error taxonomy shared by every other layer.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// Money is a monetary value in integer cents. Arithmetic and SQL
// aggregation happen on cents; the decimal form exists only on the
// wire.
type Money struct {
	Cents int64
}

// ParseDecimalToCents converts a decimal string to cents with half-up
// rounding on the third decimal place. Dot and comma separators are
// both accepted. Negative values are rejected: transaction direction
// is carried by the type column, never by the sign.
func ParseDecimalToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, Invalid("amount required")
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, Invalid("amount must be a non-negative decimal")
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, Invalid("malformed amount %q", s)
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, Invalid("malformed amount %q", s)
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, Invalid("malformed amount %q", s)
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, Invalid("malformed amount %q", s)
	}
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return 0, Invalid("amount out of range")
	}
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	return iv*100 + fracCents, nil
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return Invalid("amount must be non-negative")
	}
	return nil
}

// Float64 returns the decimal value for presentation. Cents stay the
// unit of computation.
func (m Money) Float64() float64 {
	return float64(m.Cents) / 100.0
}

func (m Money) String() string {
	return strconv.FormatFloat(m.Float64(), 'f', -1, 64)
}

// MarshalJSON renders the amount as a JSON number (1200.5), matching
// the decimal column of the original schema.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal
// string.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		m.Cents = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	cents, err := ParseDecimalToCents(s)
	if err != nil {
		return err
	}
	m.Cents = cents
	return nil
}
