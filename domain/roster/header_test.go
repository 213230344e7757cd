package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridsift/domain/grid"
	"gridsift/internal/errors"
	"gridsift/internal/testkit"
)

func TestLocateHeaderFindsInjectedRow(t *testing.T) {
	tests := []struct {
		name      string
		preamble  int
		header    []string
		wantIndex int
	}{
		{"header at top", 0, testkit.DefaultHeader, 0},
		{"header after noise", 3, testkit.DefaultHeader, 3},
		{"two families suffice", 5, []string{"Nom et Prénom", "Téléphone"}, 5},
		{"labels buried in longer cells", 2, []string{"Le Code Perso du membre", "Adresse courriel (principale)"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testkit.Sheet(testkit.Preamble(tt.preamble), tt.header)
			idx, err := LocateHeader(g, grid.DefaultHeaderBounds())
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, idx)
		})
	}
}

func TestLocateHeaderFirstQualifyingRowWins(t *testing.T) {
	// A sparse two-family row above a complete four-family row: the
	// earlier row must win even though the later one scores higher.
	g := grid.Grid{
		{"notes"},
		{"Nom", "Téléphone"},
		{"Code Perso", "Nom et Prénom", "Courriel", "Téléphone"},
	}
	idx, err := LocateHeader(g, grid.DefaultHeaderBounds())
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestLocateHeaderSingleFamilyDoesNotQualify(t *testing.T) {
	g := grid.Grid{
		{"Téléphone"},
		{"Code Perso", "Nom et Prénom", "Courriel"},
	}
	idx, err := LocateHeader(g, grid.DefaultHeaderBounds())
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestLocateHeaderNotFound(t *testing.T) {
	tests := []struct {
		name string
		g    grid.Grid
	}{
		{"empty grid", grid.Grid{}},
		{"only noise", testkit.Sheet(testkit.Preamble(10), []string{"colonne a", "colonne b"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LocateHeader(tt.g, grid.DefaultHeaderBounds())
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.CodeHeaderNotFound))
		})
	}
}

func TestLocateHeaderRespectsRowBound(t *testing.T) {
	g := testkit.Sheet(testkit.Preamble(5), testkit.DefaultHeader)
	_, err := LocateHeader(g, grid.ScanBounds{Rows: 4, Cols: 40})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeHeaderNotFound))
}

func TestLocateHeaderRespectsColBound(t *testing.T) {
	// Labels pushed past the column bound are invisible to the scan.
	row := append(testkit.Blank(40), testkit.DefaultHeader...)
	g := grid.Grid{row}
	_, err := LocateHeader(g, grid.ScanBounds{Rows: 60, Cols: 40})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeHeaderNotFound))
}
