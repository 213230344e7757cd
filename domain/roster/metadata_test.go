package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridsift/domain/grid"
)

func TestScanGroupNumberExactLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{"plain", "Numero du Groupe"},
		{"accented", "Numéro du Groupe"},
		{"with colon", "Numero du Groupe:"},
		{"short form", "No du Groupe"},
		{"bare numero", "Numero Groupe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := grid.Grid{
				{"Rapport"},
				{"", tt.label, "G-104"},
			}
			assert.Equal(t, "G-104", ScanGroupNumber(g, grid.DefaultMetadataBounds()))
		})
	}
}

func TestScanGroupNumberFuzzyFallback(t *testing.T) {
	// The exact pattern rejects extra wording; the fuzzy pass accepts
	// the label as a substring.
	g := grid.Grid{
		{"Le numéro du groupe assigné", "G-77"},
	}
	assert.Equal(t, "G-77", ScanGroupNumber(g, grid.DefaultMetadataBounds()))
}

func TestScanGroupNumberFirstHitWins(t *testing.T) {
	g := grid.Grid{
		{"Numero du Groupe", "G-1"},
		{"Numero du Groupe", "G-2"},
	}
	assert.Equal(t, "G-1", ScanGroupNumber(g, grid.DefaultMetadataBounds()))
}

func TestScanGroupNumberSkipsEmptyAndPlaceholderValues(t *testing.T) {
	g := grid.Grid{
		{"Numero du Groupe", ""},
		{"Numero du Groupe", "nan"},
		{"Numero du Groupe", "G-9"},
	}
	assert.Equal(t, "G-9", ScanGroupNumber(g, grid.DefaultMetadataBounds()))
}

func TestScanGroupNumberNotFound(t *testing.T) {
	tests := []struct {
		name string
		g    grid.Grid
	}{
		{"empty grid", grid.Grid{}},
		{"no label", grid.Grid{{"Rapport", "2024"}}},
		{"label in last scanned column has no value cell", grid.Grid{
			{"", "", "", "", "", "", "", "Numero du Groupe", "G-5"},
		}},
		{"label outside row bound", func() grid.Grid {
			g := make(grid.Grid, 13)
			g[12] = []string{"Numero du Groupe", "G-5"}
			return g
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "", ScanGroupNumber(tt.g, grid.DefaultMetadataBounds()))
		})
	}
}

func TestScanGroupNumberValueIsTrimmedNotNormalized(t *testing.T) {
	// The value keeps its original casing; only surrounding
	// whitespace is removed.
	g := grid.Grid{
		{"Numero du Groupe", "  g-Mixte 12  "},
	}
	assert.Equal(t, "g-Mixte 12", ScanGroupNumber(g, grid.DefaultMetadataBounds()))
}
