package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 9, 14, 30, 0, 0, time.UTC)
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"250.00", "250.00"},
		{"R 1,234.56", "1234.56"},
		{"-42.10", "-42.10"},
		{"  1 000.5 ", "1000.50"},
		{"", "0.00"},
		{"n/a", "0.00"},
		{"-", "0.00"},
		{"250.00-", "250.00"},
		{"1.2.3", "1.20"},
		{"(99.99)", "99.99"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Amount(tt.in).StringFixed(2), "Amount(%q)", tt.in)
	}
}

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(5000.00)", "-5000.00"},
		{"(1,234.56)", "-1234.56"},
		{" (12) ", "-12.00"},
		{"5000.00", "5000.00"},
		{"-75.25", "-75.25"},
		{"(-3)", "-3.00"},
		{"()", "0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SignedAmount(tt.in).StringFixed(2), "SignedAmount(%q)", tt.in)
	}
}

func TestBalance(t *testing.T) {
	b := Balance("4,750.00")
	require.True(t, b.Valid)
	assert.Equal(t, "4750.00", b.Decimal.StringFixed(2))

	b = Balance("(10.00)")
	require.True(t, b.Valid)
	assert.Equal(t, "-10.00", b.Decimal.StringFixed(2))

	assert.False(t, Balance("").Valid)
	assert.False(t, Balance("  ").Valid)
	assert.False(t, Balance("-").Valid)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025/01/15", "2025-01-15"},
		{"2025-01-15", "2025-01-15"},
		{"2025-1-5", "2025-01-05"},
		{"15/01/2025", "2025-01-15"},
		{"15-01-2025", "2025-01-15"},
		{"5/1/2025", "2025-01-05"},
		{"03/02/2025", "2025-02-03"},
		{"15 Jan 2025", "2025-01-15"},
		{"2025-01-15T10:00:00Z", "2025-01-15"},
		{" 2025/01/15 ", "2025-01-15"},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		require.NoError(t, err, "ParseDate(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseDate(%q)", tt.in)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "NOTADATE", "31/02/2025", "15/13/2025", "1/2", "a-b-c"} {
		_, err := ParseDate(in)
		assert.Error(t, err, "ParseDate(%q)", in)
	}
}

func TestNormalizerDate_FallsBackToToday(t *testing.T) {
	n := New(WithClock(fixedClock))

	got, ok := n.Date("NOTADATE")
	assert.True(t, ok)
	assert.Equal(t, "2026-03-09", got)

	got, ok = n.Date("15/01/2025")
	assert.True(t, ok)
	assert.Equal(t, "2025-01-15", got)
}

func TestNormalizerDate_Strict(t *testing.T) {
	n := New(WithClock(fixedClock), WithStrictDates(true))
	assert.True(t, n.StrictDates())

	_, ok := n.Date("NOTADATE")
	assert.False(t, ok)

	got, ok := n.Date("2025/01/15")
	assert.True(t, ok)
	assert.Equal(t, "2025-01-15", got)
}

func TestDescription(t *testing.T) {
	assert.Equal(t, "Grocery Store", Description("  Grocery \t  Store\n"))
	assert.Equal(t, "", Description("   "))
	assert.Equal(t, "POS PURCHASE 1234", Description("POS   PURCHASE 1234"))
}
