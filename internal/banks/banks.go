package banks

// Nedbank exports carry a value date between the narrative and the amounts;
// it is kept as the transaction reference.
func Nedbank() Parser {
	return &fixedParser{
		name:     "Nedbank",
		patterns: compileGlobs("date*description*value date*debit*credit*balance"),
		layout:   debitCreditLayout{date: 0, desc: 1, ref: 2, debit: 3, credit: 4, balance: 5},
	}
}

// ABSA exports label their amount columns "Debit Amount"/"Credit Amount" or
// lead with "Transaction Date".
func ABSA() Parser {
	return &fixedParser{
		name: "ABSA",
		patterns: compileGlobs(
			"date*description*debit amount*credit amount*balance",
			"transaction date*description*debit*credit*balance",
		),
		layout: debitCreditLayout{date: 0, desc: 1, ref: noColumn, debit: 2, credit: 3, balance: 4},
	}
}

// StandardBank matches the plain five column debit/credit/balance export.
func StandardBank() Parser {
	return &fixedParser{
		name: "Standard Bank",
		patterns: compileGlobs(
			"date*description*debit*credit*balance",
			"date*details*debit*credit*balance",
		),
		layout: debitCreditLayout{date: 0, desc: 1, ref: noColumn, debit: 2, credit: 3, balance: 4},
	}
}

// FNB exports a single signed amount column, with negatives sometimes in
// parentheses.
func FNB() Parser {
	return &fixedParser{
		name: "FNB",
		patterns: compileGlobs(
			"date*description*amount*balance",
			"date*details*amount*balance",
		),
		layout: signedAmountLayout{date: 0, desc: 1, amount: 2, balance: 3},
	}
}
