package parser

import (
	"strings"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
)

// sheetRow is a row of cell text with its 1-based source row number.
type sheetRow struct {
	num   int
	cells []string
}

// toRecords turns raw rows into records. The first non-empty row is the
// header; fully empty rows after it are skipped.
func toRecords(rows []sheetRow, cols Columns) ([]models.Record, error) {
	headerIdx := findHeaderRow(rows)
	if headerIdx < 0 {
		return nil, ErrNoHeader
	}
	header := rows[headerIdx].cells

	columnMap := make(map[string]int)
	for i, name := range header {
		key := normalizeHeader(name)
		if _, dup := columnMap[key]; !dup {
			columnMap[key] = i
		}
	}
	catIdx, ok := columnMap[normalizeHeader(cols.Category)]
	if !ok {
		return nil, &ColumnError{Column: cols.Category, Header: header}
	}
	yearIdx, ok := columnMap[normalizeHeader(cols.Year)]
	if !ok {
		return nil, &ColumnError{Column: cols.Year, Header: header}
	}

	var records []models.Record
	for _, row := range rows[headerIdx+1:] {
		if isEmptyRow(row.cells) {
			continue
		}
		records = append(records, models.Record{
			Row:      row.num,
			Category: cellAt(row.cells, catIdx),
			Year:     cellAt(row.cells, yearIdx),
		})
	}
	return records, nil
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func cellAt(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

func isEmptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
