package statement

import (
	"github.com/shopspring/decimal"

	"github.com/bandabooks/stmtparse/internal/model"
)

// CalculateMetadata totals credits and debits and takes the opening and
// closing balances from the first and last transactions that report one.
// txns is not modified.
func CalculateMetadata(txns []model.StandardizedTransaction) model.Metadata {
	md := model.Metadata{
		TotalTransactions: len(txns),
		TotalCredits:      decimal.Zero,
		TotalDebits:       decimal.Zero,
	}

	for _, txn := range txns {
		switch txn.Type {
		case model.TypeCredit:
			md.TotalCredits = md.TotalCredits.Add(txn.Amount)
		case model.TypeDebit:
			md.TotalDebits = md.TotalDebits.Add(txn.Amount)
		}
		if txn.Balance.Valid && !md.OpeningBalance.Valid {
			md.OpeningBalance = txn.Balance
		}
	}

	for i := len(txns) - 1; i >= 0; i-- {
		if txns[i].Balance.Valid {
			md.ClosingBalance = txns[i].Balance
			break
		}
	}
	return md
}
