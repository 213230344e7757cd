package roster

import (
	"strings"

	"gridsift/internal/textnorm"
)

// MapColumns walks the header row left to right and records, for each
// field family, the first column whose normalized label equals or
// contains one of the family's variants. Later duplicate-looking
// headers are ignored: first occurrence wins, and that tie-break is
// load-bearing for downstream determinism. Fields never matched stay
// absent from the mapping.
func MapColumns(headerRow []string) ColumnMapping {
	mapping := make(ColumnMapping)
	for colIdx, raw := range headerRow {
		n := textnorm.Normalize(raw)
		if n == "" {
			continue
		}
		for _, field := range AllFields {
			if _, done := mapping[field]; done {
				continue
			}
			for _, label := range FieldFamilies[field] {
				if label == n || containsLabel(n, label) {
					mapping[field] = colIdx
					break
				}
			}
		}
	}
	return mapping
}

// containsLabel reports whether a normalized cell carries a label
// variant as a substring.
func containsLabel(cell, label string) bool {
	return strings.Contains(cell, label)
}
