package roster

import (
	"regexp"
	"strings"

	"gridsift/domain/grid"
	"gridsift/internal/textnorm"
)

// groupLabelExact matches a normalized cell that is exactly a group
// number label, optionally trailed by a colon or space.
var groupLabelExact = regexp.MustCompile(`^(numero|numero du|no du)\s+groupe[: ]*$`)

// groupLabelFuzzy lists the substrings accepted by the fallback pass,
// covering minor wording variants of the label.
var groupLabelFuzzy = []string{"numero du groupe", "no du groupe", "numero groupe"}

// ScanGroupNumber scans the bounded top-left block for a group-number
// label and returns the raw value in the column immediately to its
// right. Pass 1 demands the exact label pattern; pass 2 runs only if
// pass 1 found nothing and accepts the label as a substring. Both
// passes scan row-major and return the first accepted value. Returns
// "" when neither pass finds one — a missing group number is not an
// error.
func ScanGroupNumber(g grid.Grid, bounds grid.ScanBounds) string {
	nRows := bounds.Rows
	if nRows > g.Rows() {
		nRows = g.Rows()
	}
	if v := scanGroupPass(g, nRows, bounds.Cols, func(cell string) bool {
		return groupLabelExact.MatchString(cell)
	}); v != "" {
		return v
	}
	return scanGroupPass(g, nRows, bounds.Cols, func(cell string) bool {
		for _, label := range groupLabelFuzzy {
			if strings.Contains(cell, label) {
				return true
			}
		}
		return false
	})
}

func scanGroupPass(g grid.Grid, nRows, nCols int, match func(string) bool) string {
	for r := 0; r < nRows; r++ {
		for c := 0; c < nCols; c++ {
			if !match(textnorm.Normalize(g.Cell(r, c))) {
				continue
			}
			if c+1 >= nCols {
				continue
			}
			val := strings.TrimSpace(g.Cell(r, c+1))
			// "nan" is the textual not-a-number placeholder some
			// exports leave behind for empty cells.
			if val != "" && strings.ToLower(val) != "nan" {
				return val
			}
		}
	}
	return ""
}
