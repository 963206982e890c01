// Package jurisdiction resolves shipping countries to jurisdiction codes and
// answers "which jurisdictions are near this one" from a static adjacency
// dataset. A Table is built eagerly once at process start and shared by
// reference; all lookup maps are populated at construction and read-only
// afterwards, so concurrent reads need no locking.
package jurisdiction

import "strings"

// UnknownCode is the sentinel returned for inputs that resolve to no known
// jurisdiction. It never equals a real code and has no neighbors.
const UnknownCode = "XX"

// Location describes one jurisdiction in the adjacency dataset.
type Location struct {
	Country   string
	Neighbors []string
	Notes     string
}

// Table provides memoized jurisdiction lookups over a fixed dataset.
type Table struct {
	locations      map[string]Location
	countryToCode  map[string]string
	codeToNeighbor map[string]map[string]struct{}
}

// NewTable builds a Table over the given dataset, precomputing every lookup
// map. The dataset is finite, so unbounded memoization is fine.
func NewTable(data map[string]Location) *Table {
	t := &Table{
		locations:      make(map[string]Location, len(data)),
		countryToCode:  make(map[string]string, len(data)),
		codeToNeighbor: make(map[string]map[string]struct{}, len(data)),
	}
	for code, loc := range data {
		code = strings.ToUpper(code)
		t.locations[code] = loc
		t.countryToCode[strings.ToLower(loc.Country)] = code
		set := make(map[string]struct{}, len(loc.Neighbors))
		for _, n := range loc.Neighbors {
			set[strings.ToUpper(n)] = struct{}{}
		}
		t.codeToNeighbor[code] = set
	}
	return t
}

// Default builds a Table over the vendored trade-adjacency dataset.
func Default() *Table {
	return NewTable(locations)
}

// NormalizeCountry maps free-text country input to a jurisdiction code.
// Two-letter input passes through upper-cased; anything else is resolved by
// case-insensitive display name. Unresolvable input yields UnknownCode.
func (t *Table) NormalizeCountry(input string) string {
	trimmed := strings.TrimSpace(input)
	if len(trimmed) == 2 {
		return strings.ToUpper(trimmed)
	}
	if code, ok := t.countryToCode[strings.ToLower(trimmed)]; ok {
		return code
	}
	return UnknownCode
}

// Neighbors returns the related jurisdiction codes for the given code, empty
// for unknown codes.
func (t *Table) Neighbors(code string) []string {
	loc, ok := t.locations[strings.ToUpper(code)]
	if !ok {
		return nil
	}
	return loc.Neighbors
}

// NeighborSet returns the related codes as a lookup set. The returned map is
// shared and must not be mutated.
func (t *Table) NeighborSet(code string) map[string]struct{} {
	return t.codeToNeighbor[strings.ToUpper(code)]
}

// Len reports the number of jurisdictions in the dataset.
func (t *Table) Len() int {
	return len(t.locations)
}
