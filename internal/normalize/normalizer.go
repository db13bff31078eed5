package normalize

import (
	"strings"
	"time"
)

// Normalizer applies the row-level policies that depend on configuration:
// which clock supplies the fallback date, and whether undated rows are kept.
type Normalizer struct {
	now         func() time.Time
	strictDates bool
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock overrides the source of "today" for the date fallback.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) { n.now = now }
}

// WithStrictDates makes Date reject unparseable cells instead of
// substituting today's date.
func WithStrictDates(strict bool) Option {
	return func(n *Normalizer) { n.strictDates = strict }
}

// New creates a Normalizer. The zero configuration falls back to today's date.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{now: time.Now}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Date returns the canonical date for a cell. When the cell cannot be parsed
// it returns today's date, or ok=false in strict mode.
func (n *Normalizer) Date(raw string) (date string, ok bool) {
	d, err := ParseDate(raw)
	if err == nil {
		return d, true
	}
	if n.strictDates {
		return "", false
	}
	return n.now().Format(DateFormat), true
}

// StrictDates reports whether unparseable dates are rejected.
func (n *Normalizer) StrictDates() bool { return n.strictDates }

// Description trims a narrative and collapses internal whitespace runs.
func Description(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
