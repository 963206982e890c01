package jurisdiction

import "testing"

func TestNormalizeCountry(t *testing.T) {
	table := Default()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"two-letter code passthrough", "de", "DE"},
		{"full name", "Germany", "DE"},
		{"case-insensitive name", "gErMaNy", "DE"},
		{"unknown country", "Atlantis", UnknownCode},
		{"empty", "", UnknownCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.NormalizeCountry(tt.input); got != tt.want {
				t.Errorf("NormalizeCountry(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNeighbors(t *testing.T) {
	table := Default()

	neighbors := table.NeighborSet("DE")
	if len(neighbors) == 0 {
		t.Fatal("expected neighbors for DE")
	}
	if _, ok := neighbors["FR"]; !ok {
		t.Errorf("expected FR in DE's neighbor set, got %v", neighbors)
	}
	// The dataset lists each jurisdiction in its own neighborhood; exact
	// matches are handled before the neighbor check, so this is harmless.
	if _, ok := neighbors["DE"]; !ok {
		t.Errorf("expected DE in its own neighborhood, got %v", neighbors)
	}
}

func TestNeighborsUnknownCode(t *testing.T) {
	table := Default()
	if got := table.Neighbors("ZZ"); got != nil {
		t.Errorf("expected nil neighbors for unknown code, got %v", got)
	}
	if got := table.NeighborSet(UnknownCode); len(got) != 0 {
		t.Errorf("expected empty neighbor set for unknown code, got %v", got)
	}
}

func TestDefaultTableSize(t *testing.T) {
	if n := Default().Len(); n < 150 {
		t.Errorf("vendored location table suspiciously small: %d entries", n)
	}
}
