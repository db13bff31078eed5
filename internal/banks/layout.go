package banks

import (
	"regexp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/bandabooks/stmtparse/internal/model"
	"github.com/bandabooks/stmtparse/internal/normalize"
	"github.com/bandabooks/stmtparse/internal/reader"
)

const noColumn = -1

// layout maps fixed column positions to transaction fields.
type layout interface {
	minColumns() int
	extract(row []string, n *normalize.Normalizer) (model.StandardizedTransaction, bool)
}

// debitCreditLayout is [date, description, (value date,) debit, credit, balance].
type debitCreditLayout struct {
	date, desc, ref, debit, credit, balance int
}

func (l debitCreditLayout) minColumns() int {
	return max(l.date, l.desc, l.ref, l.debit, l.credit, l.balance) + 1
}

func (l debitCreditLayout) extract(row []string, n *normalize.Normalizer) (model.StandardizedTransaction, bool) {
	net := normalize.Amount(row[l.credit]).Sub(normalize.Amount(row[l.debit]))
	var ref string
	if l.ref != noColumn {
		ref = row[l.ref]
	}
	return buildTransaction(row, n, row[l.date], row[l.desc], net, normalize.Balance(row[l.balance]), ref)
}

// signedAmountLayout is [date, description, amount, balance] where the sign
// of amount gives the direction and "(x)" means -x.
type signedAmountLayout struct {
	date, desc, amount, balance int
}

func (l signedAmountLayout) minColumns() int {
	return max(l.date, l.desc, l.amount, l.balance) + 1
}

func (l signedAmountLayout) extract(row []string, n *normalize.Normalizer) (model.StandardizedTransaction, bool) {
	net := normalize.SignedAmount(row[l.amount])
	return buildTransaction(row, n, row[l.date], row[l.desc], net, normalize.Balance(row[l.balance]), "")
}

// buildTransaction applies the row policy shared by every parser. It reports
// false for rows without a date or description, rows with no movement, and
// rows whose date is rejected by the normalizer.
func buildTransaction(row []string, n *normalize.Normalizer, dateCell, descCell string,
	net decimal.Decimal, balance decimal.NullDecimal, ref string,
) (model.StandardizedTransaction, bool) {
	desc := normalize.Description(descCell)
	if normalize.Description(dateCell) == "" || desc == "" {
		return model.StandardizedTransaction{}, false
	}
	if net.IsZero() {
		return model.StandardizedTransaction{}, false
	}

	date, ok := n.Date(dateCell)
	if !ok {
		return model.StandardizedTransaction{}, false
	}

	typ := model.TypeDebit
	if net.IsPositive() {
		typ = model.TypeCredit
	}

	return model.StandardizedTransaction{
		Date:         date,
		Description:  desc,
		Amount:       net.Abs(),
		Type:         typ,
		Balance:      balance,
		Reference:    normalize.Description(ref),
		OriginalData: slices.Clone(row),
	}, true
}

// fixedParser is a bank parser driven by header patterns and a fixed layout.
type fixedParser struct {
	name     string
	patterns []*regexp.Regexp
	layout   layout
}

func (p *fixedParser) Name() string { return p.name }

// Identify reports whether any header pattern matches.
func (p *fixedParser) Identify(headers []string) bool {
	sig := headerSignature(headers)
	for _, re := range p.patterns {
		if re.MatchString(sig) {
			return true
		}
	}
	return false
}

// CheckRow reports whether row is wide enough for the layout.
func (p *fixedParser) CheckRow(row []string) bool {
	return len(row) >= p.layout.minColumns()
}

// Parse converts every data row after the header. Short or empty rows are
// skipped and counted.
func (p *fixedParser) Parse(grid reader.Grid, n *normalize.Normalizer) Extraction {
	var ex Extraction
	if len(grid) <= 1 {
		return ex
	}
	minCols := p.layout.minColumns()
	for _, row := range grid[1:] {
		if len(row) < minCols {
			ex.Skipped++
			continue
		}
		txn, ok := p.layout.extract(row, n)
		if !ok {
			ex.Skipped++
			continue
		}
		ex.Transactions = append(ex.Transactions, txn)
	}
	return ex
}
