package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/bandabooks/stmtparse/internal/model"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	return table
}

func renderParseResult(w io.Writer, res *model.ParseResult) {
	fmt.Fprintf(w, "Bank: %s\n", res.BankName)
	fmt.Fprintf(w, "Statement ID: %s\n", res.StatementID)

	table := newTable(w, []string{"Date", "Description", "Type", "Amount", "Balance", "Reference"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})
	for _, txn := range res.Transactions {
		table.Append([]string{
			txn.Date,
			txn.Description,
			string(txn.Type),
			txn.Amount.StringFixed(2),
			formatBalance(txn.Balance),
			txn.Reference,
		})
	}
	table.Render()

	md := res.Metadata
	fmt.Fprintf(w, "Transactions: %d (skipped rows: %d)\n", md.TotalTransactions, md.SkippedRows)
	fmt.Fprintf(w, "Credits: %s  Debits: %s\n", md.TotalCredits.StringFixed(2), md.TotalDebits.StringFixed(2))
	fmt.Fprintf(w, "Opening balance: %s  Closing balance: %s\n", formatBalance(md.OpeningBalance), formatBalance(md.ClosingBalance))
	renderErrors(w, res.Errors)
}

func renderValidation(w io.Writer, v model.ValidationResult) {
	status := "INVALID"
	if v.IsValid {
		status = "VALID"
	}
	bank := v.BankDetected
	if bank == "" {
		bank = "-"
	}
	fmt.Fprintf(w, "%s: bank=%s transactions=%d\n", status, bank, v.TransactionCount)
	renderErrors(w, v.Errors)
}

func renderBanks(w io.Writer, names []string) {
	table := newTable(w, []string{"Priority", "Bank"})
	for i, name := range names {
		table.Append([]string{strconv.Itoa(i + 1), name})
	}
	table.Render()
}

func renderScan(w io.Writer, results []scanResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No statements found.")
		return
	}
	table := newTable(w, []string{"File", "Bank", "Transactions", "Valid", "Archived", "Errors"})
	for _, r := range results {
		v := r.Validation
		table.Append([]string{
			r.File,
			v.BankDetected,
			strconv.Itoa(v.TransactionCount),
			strconv.FormatBool(v.IsValid),
			strconv.FormatBool(r.Archived),
			strings.Join(v.Errors, "; "),
		})
	}
	table.Render()
}

func renderErrors(w io.Writer, errs []string) {
	for _, e := range errs {
		fmt.Fprintf(w, "error: %s\n", e)
	}
}

func formatBalance(b decimal.NullDecimal) string {
	if !b.Valid {
		return "-"
	}
	return b.Decimal.StringFixed(2)
}
