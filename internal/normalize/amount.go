// Package normalize converts statement cell text into canonical amounts,
// dates and descriptions.
package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	nonNumeric    = regexp.MustCompile(`[^0-9.\-]`)
	leadingNumber = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)
)

// Amount parses a currency cell by dropping everything except digits, '.'
// and '-'. Blank or unparseable input yields zero.
// "R 1,234.56" -> 1234.56
func Amount(raw string) decimal.Decimal {
	cleaned := nonNumeric.ReplaceAllString(raw, "")
	if cleaned == "" {
		return decimal.Zero
	}
	if d, err := decimal.NewFromString(cleaned); err == nil {
		return d
	}
	// Salvage a numeric prefix such as "250.00-" or "1.5.2".
	prefix := leadingNumber.FindString(cleaned)
	if prefix == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// SignedAmount is Amount with accounting notation: a value wrapped in
// parentheses is negative.
// "(1,234.56)" -> -1234.56
func SignedAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	d := Amount(s)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		return d.Abs().Neg()
	}
	return d
}

// Balance parses a running-balance cell. Unlike Amount, a blank or
// unparseable cell is reported as absent rather than zero.
func Balance(raw string) decimal.NullDecimal {
	s := strings.TrimSpace(raw)
	if s == "" || !strings.ContainsAny(s, "0123456789") {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(SignedAmount(s))
}
