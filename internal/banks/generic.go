package banks

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bandabooks/stmtparse/internal/model"
	"github.com/bandabooks/stmtparse/internal/normalize"
	"github.com/bandabooks/stmtparse/internal/reader"
)

// ErrRequiredColumns is returned by Generic.Parse when the header lacks a
// date, a description, or an amount (single or debit plus credit) column.
var ErrRequiredColumns = errors.New("Could not identify required columns") //nolint:staticcheck // shown to users verbatim

// Header keywords per field. Matching is a case-insensitive substring test.
var (
	dateKeywords    = []string{"date", "posted", "posting"}
	descKeywords    = []string{"description", "details", "narrative", "particulars", "memo", "payee"}
	debitKeywords   = []string{"debit", "withdrawal", "money out", "paid out"}
	creditKeywords  = []string{"credit", "deposit", "money in", "paid in"}
	amountKeywords  = []string{"amount"}
	balanceKeywords = []string{"balance"}
)

// GenericName labels results produced by the fallback parser.
const GenericName = "Generic"

// Columns holds the header positions found by Generic. Absent fields are -1.
type Columns struct {
	Date, Description, Amount, Debit, Credit, Balance int
}

// HasAmount reports whether a single signed amount column was found.
func (c Columns) HasAmount() bool { return c.Amount != noColumn }

// HasDebitCredit reports whether both separate amount columns were found.
func (c Columns) HasDebitCredit() bool { return c.Debit != noColumn && c.Credit != noColumn }

func (c Columns) usable() bool {
	return c.Date != noColumn && c.Description != noColumn && (c.HasAmount() || c.HasDebitCredit())
}

// Generic parses unrecognized exports by locating columns from header names.
type Generic struct{}

// Name returns the fallback label.
func (Generic) Name() string { return GenericName }

// DetectColumns finds each field's column: the first unclaimed header
// containing any of the field's keywords. Debit and credit are claimed
// before amount so that "Debit Amount" is not taken as a signed amount, and
// no header is assigned to two fields.
func DetectColumns(headers []string) Columns {
	lower := make([]string, len(headers))
	for i, h := range headers {
		lower[i] = strings.ToLower(strings.TrimSpace(h))
	}
	claimed := make(map[int]bool)

	find := func(keywords []string) int {
		for i, h := range lower {
			if claimed[i] {
				continue
			}
			for _, kw := range keywords {
				if strings.Contains(h, kw) {
					claimed[i] = true
					return i
				}
			}
		}
		return noColumn
	}

	var c Columns
	c.Debit = find(debitKeywords)
	c.Credit = find(creditKeywords)
	c.Date = find(dateKeywords)
	c.Balance = find(balanceKeywords)
	c.Amount = find(amountKeywords)
	c.Description = find(descKeywords)
	return c
}

// Parse converts rows using header-detected columns. It returns
// ErrRequiredColumns when the header cannot be mapped.
func (g Generic) Parse(grid reader.Grid, n *normalize.Normalizer) (Extraction, error) {
	cols := DetectColumns(grid.Header())
	if !cols.usable() {
		return Extraction{}, ErrRequiredColumns
	}

	var ex Extraction
	if len(grid) <= 1 {
		return ex, nil
	}
	for _, row := range grid[1:] {
		txn, ok := g.parseRow(row, cols, n)
		if !ok {
			ex.Skipped++
			continue
		}
		ex.Transactions = append(ex.Transactions, txn)
	}
	return ex, nil
}

func (Generic) parseRow(row []string, cols Columns, n *normalize.Normalizer) (model.StandardizedTransaction, bool) {
	var net decimal.Decimal
	if cols.HasAmount() {
		net = normalize.SignedAmount(cell(row, cols.Amount))
	} else {
		net = normalize.Amount(cell(row, cols.Credit)).Sub(normalize.Amount(cell(row, cols.Debit)))
	}

	balance := decimal.NullDecimal{}
	if cols.Balance != noColumn {
		balance = normalize.Balance(cell(row, cols.Balance))
	}

	return buildTransaction(row, n, cell(row, cols.Date), cell(row, cols.Description), net, balance, "")
}

// cell returns row[i], or "" when the row is too short.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
