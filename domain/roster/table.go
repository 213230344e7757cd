package roster

import (
	"strings"

	"gridsift/domain/grid"
)

// BuildTable extracts the working table from the rows below the header
// using the column mapping. Names are trimmed, emails trimmed and
// lowercased, phones kept raw for the normalization step, and the
// detected group number is replicated onto every record. Unmapped
// fields yield empty columns.
func BuildTable(g grid.Grid, headerIdx int, mapping ColumnMapping, groupNumber string) []Record {
	records := make([]Record, 0, g.Rows()-headerIdx-1)
	for r := headerIdx + 1; r < g.Rows(); r++ {
		rec := Record{
			PersonCode:  mappedCell(g, r, mapping, FieldPersonCode),
			FullName:    strings.TrimSpace(mappedCell(g, r, mapping, FieldFullName)),
			Email:       strings.ToLower(strings.TrimSpace(mappedCell(g, r, mapping, FieldEmail))),
			Phone:       mappedCell(g, r, mapping, FieldPhone),
			GroupNumber: groupNumber,
		}
		records = append(records, rec)
	}
	return records
}

func mappedCell(g grid.Grid, row int, mapping ColumnMapping, field Field) string {
	col, ok := mapping[field]
	if !ok {
		return ""
	}
	return g.Cell(row, col)
}
