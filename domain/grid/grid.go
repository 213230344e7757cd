package grid

// Grid is a header-less two-dimensional view of a spreadsheet as read
// from the source file. Rows may have differing lengths; out-of-range
// access yields the empty string. A Grid is never mutated after load.
type Grid [][]string

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the widest row length in the grid.
func (g Grid) Cols() int {
	max := 0
	for _, row := range g {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// Cell returns the raw cell at (row, col), or "" when out of range.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Row returns the raw row at idx, or nil when out of range.
func (g Grid) Row(idx int) []string {
	if idx < 0 || idx >= len(g) {
		return nil
	}
	return g[idx]
}

// TopLeft returns a copy of the bounded top-left slice of the grid,
// used for diagnostic snapshots.
func (g Grid) TopLeft(bounds ScanBounds) Grid {
	nRows := bounds.Rows
	if nRows > len(g) {
		nRows = len(g)
	}
	out := make(Grid, 0, nRows)
	for r := 0; r < nRows; r++ {
		row := g[r]
		nCols := bounds.Cols
		if nCols > len(row) {
			nCols = len(row)
		}
		out = append(out, append([]string(nil), row[:nCols]...))
	}
	return out
}
