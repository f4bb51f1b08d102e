package parser

import (
	"fmt"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads records from a workbook file.
func ReadXLSX(path string, opts Options) ([]models.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	return ExtractRecords(f, opts)
}

// ExtractRecords reads records from an open workbook.
func ExtractRecords(f *excelize.File, opts Options) ([]models.Record, error) {
	sheetName := opts.Sheet
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoHeader
		}
		sheetName = sheets[0]
	}

	rows, err := extractRows(f, sheetName)
	if err != nil {
		return nil, err
	}

	records, err := toRecords(cropRows(rows, opts.Range), opts.Columns)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
	}
	return records, nil
}

// extractRows returns the raw cell text of a sheet. Cell values are read
// unformatted so that number formats cannot turn a year into a date.
func extractRows(f *excelize.File, sheetName string) ([]sheetRow, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	result := make([]sheetRow, 0, len(rows))
	for rowIdx, row := range rows {
		result = append(result, sheetRow{
			num:   rowIdx + 1, // 1-based row index
			cells: row,
		})
	}
	return result, nil
}
