package banks

import (
	"strings"
)

// Registry is an ordered, read-only list of bank parsers. Order is priority:
// header patterns overlap between banks and the first match wins.
type Registry struct {
	parsers []Parser
}

// NewRegistry creates a registry with parsers in priority order. Panics on
// a duplicate name.
func NewRegistry(parsers ...Parser) *Registry {
	seen := make(map[string]bool, len(parsers))
	for _, p := range parsers {
		key := strings.ToLower(p.Name())
		if seen[key] {
			panic("duplicate bank parser: " + p.Name())
		}
		seen[key] = true
	}
	return &Registry{parsers: append([]Parser(nil), parsers...)}
}

// DefaultRegistry returns the built-in bank parsers. Parsers with more
// specific headers come before the permissive ones they would otherwise
// lose to.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Nedbank(),
		ABSA(),
		StandardBank(),
		FNB(),
	)
}

// Identify returns the first parser whose header patterns match, or nil.
// When firstDataRow is given, parsers implementing RowChecker must also
// accept it.
func (r *Registry) Identify(headers, firstDataRow []string) Parser {
	for _, p := range r.parsers {
		if !p.Identify(headers) {
			continue
		}
		if rc, ok := p.(RowChecker); ok && firstDataRow != nil && !rc.CheckRow(firstDataRow) {
			continue
		}
		return p
	}
	return nil
}

// Names returns parser names in priority order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.parsers))
	for i, p := range r.parsers {
		names[i] = p.Name()
	}
	return names
}
