package ports

import "gridsift/domain/grid"

// GridReader loads a spreadsheet resource into a header-less raw grid.
type GridReader interface {
	// ReadGrid reads the resource at path. Sheet selects a worksheet
	// by name for workbook formats; "" means the first sheet.
	ReadGrid(path, sheet string) (grid.Grid, error)
}
