// Package testkit builds synthetic raw grids for tests: noisy
// preamble rows, a header injected at a chosen index, blank spacer
// rows.
package testkit

import "gridsift/domain/grid"

// DefaultHeader is a realistic messy export header: French labels,
// mixed accents and casing.
var DefaultHeader = []string{"Code Perso", "Nom et Prénom", "Courriel", "Téléphone"}

// Sheet assembles a grid from a noisy preamble, a header row, and data
// rows. The header lands exactly at index len(preamble).
func Sheet(preamble [][]string, header []string, data ...[]string) grid.Grid {
	g := make(grid.Grid, 0, len(preamble)+1+len(data))
	g = append(g, preamble...)
	g = append(g, header)
	g = append(g, data...)
	return g
}

// Preamble returns n rows of header-free noise of the kind real
// exports carry above the table: titles, dates, blanks.
func Preamble(n int) [][]string {
	noise := [][]string{
		{"Rapport d'inscription"},
		{},
		{"Généré le", "2024-03-01"},
		{"", "", ""},
		{"Service aux membres"},
	}
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = append([]string(nil), noise[i%len(noise)]...)
	}
	return rows
}

// PreambleWithGroup is Preamble with a group-number label/value pair
// placed at the given row (column 1 label, column 2 value).
func PreambleWithGroup(n, row int, label, value string) [][]string {
	rows := Preamble(n)
	for len(rows[row]) < 3 {
		rows[row] = append(rows[row], "")
	}
	rows[row][1] = label
	rows[row][2] = value
	return rows
}

// Blank returns a spacer row of n empty cells.
func Blank(n int) []string {
	return make([]string, n)
}
