package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sentinel bank names used when no bank-specific parser produced the result.
const (
	BankGeneric = "Generic"
	BankUnknown = "Unknown"
)

// Metadata summarizes a parsed statement.
type Metadata struct {
	TotalTransactions int                 `json:"totalTransactions"`
	TotalCredits      decimal.Decimal     `json:"totalCredits"`
	TotalDebits       decimal.Decimal     `json:"totalDebits"`
	OpeningBalance    decimal.NullDecimal `json:"openingBalance"`
	ClosingBalance    decimal.NullDecimal `json:"closingBalance"`
	SkippedRows       int                 `json:"skippedRows"`
}

// ParseResult is the outcome of parsing one statement file. Errors may be
// non-empty even when Transactions is not: partial extraction is normal.
type ParseResult struct {
	StatementID     uuid.UUID                 `json:"statementId"`
	BankName        string                    `json:"bankName"`
	AccountNumber   string                    `json:"accountNumber,omitempty"`
	StatementPeriod string                    `json:"statementPeriod,omitempty"`
	Transactions    []StandardizedTransaction `json:"transactions"`
	Metadata        Metadata                  `json:"metadata"`
	Errors          []string                  `json:"errors"`
}

// ValidationResult gates whether an uploaded statement is accepted.
type ValidationResult struct {
	IsValid          bool     `json:"isValid"`
	Errors           []string `json:"errors"`
	BankDetected     string   `json:"bankDetected,omitempty"`
	TransactionCount int      `json:"transactionCount"`
}
