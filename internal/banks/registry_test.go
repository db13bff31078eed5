package banks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bandabooks/stmtparse/internal/normalize"
	"github.com/bandabooks/stmtparse/internal/reader"
)

type stubParser struct {
	name  string
	match bool
}

func (s stubParser) Name() string             { return s.name }
func (s stubParser) Identify(_ []string) bool { return s.match }

func (s stubParser) Parse(reader.Grid, *normalize.Normalizer) Extraction {
	return Extraction{}
}

func TestDefaultRegistry_Order(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"Nedbank", "ABSA", "Standard Bank", "FNB"}, r.Names())
}

func TestRegistry_IdentifyFirstMatchWins(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		headers []string
		want    string
	}{
		{headers("Date", "Description", "Debit", "Credit", "Balance"), "Standard Bank"},
		{headers("Date", "Description", "Value Date", "Debit", "Credit", "Balance"), "Nedbank"},
		{headers("Date", "Description", "Debit Amount", "Credit Amount", "Balance"), "ABSA"},
		{headers("Date", "Description", "Amount", "Balance"), "FNB"},
	}
	for _, tt := range tests {
		p := r.Identify(tt.headers, nil)
		require.NotNil(t, p, "Identify(%v)", tt.headers)
		assert.Equal(t, tt.want, p.Name(), "Identify(%v)", tt.headers)
	}
}

func TestRegistry_IdentifyDeterministic(t *testing.T) {
	r := DefaultRegistry()
	h := headers("Date", "Description", "Value Date", "Debit", "Credit", "Balance")
	want := r.Identify(h, nil).Name()
	for i := 0; i < 20; i++ {
		assert.Equal(t, want, r.Identify(h, nil).Name())
	}
}

func TestRegistry_IdentifyNone(t *testing.T) {
	r := DefaultRegistry()
	assert.Nil(t, r.Identify(headers("Reference No", "Posting Date", "Payee", "Amount"), nil))
	assert.Nil(t, r.Identify(nil, nil))
}

func TestRegistry_IdentifyChecksFirstRow(t *testing.T) {
	r := DefaultRegistry()
	h := headers("Date", "Description", "Value Date", "Debit", "Credit", "Balance")

	p := r.Identify(h, []string{"2025-02-01", "x", "2025-02-01", "1", "", "2"})
	require.NotNil(t, p)
	assert.Equal(t, "Nedbank", p.Name())

	// A five cell row cannot be Nedbank's layout; the next matching
	// pattern takes it.
	p = r.Identify(h, []string{"2025-02-01", "x", "1", "", "2"})
	require.NotNil(t, p)
	assert.Equal(t, "Standard Bank", p.Name())
}

func TestNewRegistry_OrderIsPriority(t *testing.T) {
	r := NewRegistry(stubParser{name: "first", match: true}, stubParser{name: "second", match: true})
	assert.Equal(t, "first", r.Identify(headers("anything"), nil).Name())

	r = NewRegistry(stubParser{name: "first"}, stubParser{name: "second", match: true})
	assert.Equal(t, "second", r.Identify(headers("anything"), nil).Name())
}

func TestNewRegistry_DuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry(stubParser{name: "FNB"}, stubParser{name: "fnb"})
	})
}

func TestRegistry_NamesIsCopy(t *testing.T) {
	r := DefaultRegistry()
	names := r.Names()
	names[0] = "changed"
	assert.Equal(t, "Nedbank", r.Names()[0])
}
