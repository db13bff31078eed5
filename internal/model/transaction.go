package model

import (
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of money movement.
type TransactionType string

const (
	TypeCredit TransactionType = "credit" // increases balance
	TypeDebit  TransactionType = "debit"  // decreases balance
)

// StandardizedTransaction is one statement row in the bank-agnostic schema.
type StandardizedTransaction struct {
	Date         string              `json:"date"` // YYYY-MM-DD
	Description  string              `json:"description"`
	Amount       decimal.Decimal     `json:"amount"` // magnitude, never negative
	Type         TransactionType     `json:"type"`
	Balance      decimal.NullDecimal `json:"balance"`
	Reference    string              `json:"reference,omitempty"`
	Category     string              `json:"category,omitempty"` // left for downstream enrichment
	OriginalData []string            `json:"originalData"`
}

// Signed returns the amount with the direction applied: positive for
// credits, negative for debits.
func (t StandardizedTransaction) Signed() decimal.Decimal {
	if t.Type == TypeDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}
