package banks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandabooks/stmtparse/internal/model"
	"github.com/bandabooks/stmtparse/internal/reader"
)

func TestDetectColumns(t *testing.T) {
	c := DetectColumns(headers("Reference No", "Posting Date", "Payee", "Amount"))
	assert.Equal(t, 1, c.Date)
	assert.Equal(t, 2, c.Description)
	assert.Equal(t, 3, c.Amount)
	assert.Equal(t, noColumn, c.Debit)
	assert.Equal(t, noColumn, c.Credit)
	assert.Equal(t, noColumn, c.Balance)
	assert.True(t, c.HasAmount())
	assert.False(t, c.HasDebitCredit())
}

func TestDetectColumns_DebitAmountNotSigned(t *testing.T) {
	c := DetectColumns(headers("Date", "Narrative", "Debit Amount", "Credit Amount", "Running Balance"))
	assert.Equal(t, 2, c.Debit)
	assert.Equal(t, 3, c.Credit)
	assert.Equal(t, 4, c.Balance)
	assert.False(t, c.HasAmount())
	assert.True(t, c.HasDebitCredit())
}

func TestDetectColumns_ReferenceIsNotDescription(t *testing.T) {
	c := DetectColumns(headers("Reference", "Date", "Description", "Amount"))
	assert.Equal(t, 2, c.Description)
}

func TestDetectColumns_FirstMatchingHeaderWins(t *testing.T) {
	c := DetectColumns(headers("Date", "Transaction Date", "Memo", "Details", "Amount"))
	assert.Equal(t, 0, c.Date)
	assert.Equal(t, 2, c.Description)
	assert.Equal(t, 4, c.Amount)
}

func TestGeneric_ParseAmountColumn(t *testing.T) {
	grid := loadGrid(t, "generic.csv")
	ex, err := Generic{}.Parse(grid, testNormalizer())
	require.NoError(t, err)

	require.Len(t, ex.Transactions, 2)
	assert.Equal(t, 1, ex.Skipped)

	coffee := ex.Transactions[0]
	assert.Equal(t, "2025-04-01", coffee.Date)
	assert.Equal(t, "Coffee Shop", coffee.Description)
	assert.Equal(t, model.TypeDebit, coffee.Type)
	assert.Equal(t, "45.00", coffee.Amount.StringFixed(2))
	assert.False(t, coffee.Balance.Valid)

	assert.Equal(t, model.TypeCredit, ex.Transactions[1].Type)
}

func TestGeneric_ParseDebitCreditColumns(t *testing.T) {
	grid := reader.Grid{
		{"When", "Transaction Date", "Particulars", "Money Out", "Money In", "Balance"},
		{"x", "15/01/2025", "Rent", "9000", "", "1000"},
		{"x", "16/01/2025", "Wages", "", "(1200)", "2200"},
		{"x", "17/01/2025"},
	}
	ex, err := Generic{}.Parse(grid, testNormalizer())
	require.NoError(t, err)

	require.Len(t, ex.Transactions, 2)
	assert.Equal(t, 1, ex.Skipped)
	assert.Equal(t, model.TypeDebit, ex.Transactions[0].Type)
	assert.Equal(t, "9000", ex.Transactions[0].Amount.String())
	require.True(t, ex.Transactions[0].Balance.Valid)
	assert.Equal(t, model.TypeCredit, ex.Transactions[1].Type, "debit/credit cells are unsigned magnitudes")
	assert.Equal(t, "2025-01-16", ex.Transactions[1].Date)
}

func TestGeneric_MissingColumns(t *testing.T) {
	tests := [][]string{
		headers("Date", "Amount"),
		headers("Description", "Amount"),
		headers("Date", "Description", "Debit"),
		headers("Foo", "Bar"),
	}
	for _, h := range tests {
		ex, err := Generic{}.Parse(reader.Grid{h, {"2025/01/01", "x", "1"}}, testNormalizer())
		assert.True(t, errors.Is(err, ErrRequiredColumns), "headers %v", h)
		assert.Empty(t, ex.Transactions)
	}
	assert.Equal(t, "Could not identify required columns", ErrRequiredColumns.Error())
}

func TestGeneric_Name(t *testing.T) {
	assert.Equal(t, "Generic", Generic{}.Name())
}
