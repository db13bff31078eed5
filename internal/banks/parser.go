// Package banks recognizes bank statement layouts and converts their rows
// into standardized transactions.
package banks

import (
	"regexp"
	"strings"

	"github.com/bandabooks/stmtparse/internal/model"
	"github.com/bandabooks/stmtparse/internal/normalize"
	"github.com/bandabooks/stmtparse/internal/reader"
)

// Parser recognizes and converts one bank's statement export.
type Parser interface {
	Name() string
	Identify(headers []string) bool
	Parse(grid reader.Grid, n *normalize.Normalizer) Extraction
}

// RowChecker is implemented by parsers that can confirm a header match
// against the first data row.
type RowChecker interface {
	CheckRow(row []string) bool
}

// Extraction is the output of a parse. Skipped counts data rows that were
// dropped as blank, malformed or carrying no movement.
type Extraction struct {
	Transactions []model.StandardizedTransaction
	Skipped      int
}

// headerSignature joins header cells the way identify patterns expect:
// trimmed, lowercased, '|' separated.
func headerSignature(headers []string) string {
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return strings.Join(cells, "|")
}

// compileGlob turns a pattern like "date*description*balance" into an
// unanchored regexp where '*' matches any text, separators included.
func compileGlob(glob string) *regexp.Regexp {
	parts := strings.Split(strings.ToLower(glob), "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(strings.Join(parts, ".*"))
}

func compileGlobs(globs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(globs))
	for i, g := range globs {
		out[i] = compileGlob(g)
	}
	return out
}
