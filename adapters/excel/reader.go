// Package excel reads spreadsheet exports into raw, header-less grids.
package excel

import (
	"encoding/csv"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"gridsift/domain/grid"
	"gridsift/internal/errors"
)

// DataReader handles reading Excel and CSV files into a raw grid. It
// makes no assumptions about where the header row is — locating it is
// the extraction engine's job, so every row is surfaced as-is.
type DataReader struct{}

// NewDataReader creates a data reader that handles .xlsx, .xlsm and
// .csv files.
func NewDataReader() *DataReader {
	return &DataReader{}
}

// ReadGrid reads the file at path into a grid. For workbook formats,
// sheet selects a worksheet by name; "" picks the first sheet.
func (r *DataReader) ReadGrid(path, sheet string) (grid.Grid, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.InputNotFound(path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return r.readWorkbook(path, sheet)
	case ".csv":
		return r.readCSV(path)
	default:
		return nil, errors.Newf(errors.CodeInvalidInput,
			"unsupported file extension %q (supported: .xlsx, .xlsm, .csv)", ext)
	}
}

func (r *DataReader) readWorkbook(path, sheet string) (grid.Grid, error) {
	start := time.Now()
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open workbook %s", path)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, errors.New(errors.CodeInvalidInput, "workbook has no sheets")
		}
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: false})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %q", sheet)
	}
	log.Printf("[DataReader] workbook sheet %q read in %.2fms (%d rows)",
		sheet, float64(time.Since(start).Nanoseconds())/1e6, len(rows))

	return grid.Grid(rows), nil
}

func (r *DataReader) readCSV(path string) (grid.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open CSV file %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Preamble rows above the header rarely match the data width.
	reader.FieldsPerRecord = -1

	start := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read CSV file %s", path)
	}
	log.Printf("[DataReader] CSV file read in %.2fms (%d rows)",
		float64(time.Since(start).Nanoseconds())/1e6, len(rows))

	return grid.Grid(rows), nil
}
