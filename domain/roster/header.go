package roster

import (
	"gridsift/domain/grid"
	"gridsift/internal/errors"
	"gridsift/internal/textnorm"
)

// headerHitThreshold is the number of distinct field families a row
// must touch before it is believed to be the header.
const headerHitThreshold = 2

// LocateHeader scans the bounded top-left region of the raw grid and
// returns the index of the first row in which at least two distinct
// field families have a label hit. A cell hits a family when any of
// the family's variants is a substring of the normalized cell.
//
// The first qualifying row wins, deliberately favoring the earliest
// plausible header over a later, possibly more complete one. When no
// row within the bounds qualifies, the run cannot proceed and a
// HEADER_NOT_FOUND error is returned.
func LocateHeader(g grid.Grid, bounds grid.ScanBounds) (int, error) {
	nRows := bounds.Rows
	if nRows > g.Rows() {
		nRows = g.Rows()
	}
	for r := 0; r < nRows; r++ {
		row := normalizeRow(g.Row(r), bounds.Cols)
		hits := 0
		for _, family := range FieldFamilies {
			if rowHitsFamily(row, family) {
				hits++
			}
		}
		if hits >= headerHitThreshold {
			return r, nil
		}
	}
	return 0, errors.New(errors.CodeHeaderNotFound,
		"header row not found: no row within the scan bounds carries labels from two or more field families")
}

func normalizeRow(row []string, maxCols int) []string {
	n := maxCols
	if n > len(row) {
		n = len(row)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = textnorm.Normalize(row[i])
	}
	return out
}

func rowHitsFamily(row, family []string) bool {
	for _, cell := range row {
		if cell == "" {
			continue
		}
		for _, label := range family {
			if containsLabel(cell, label) {
				return true
			}
		}
	}
	return false
}
