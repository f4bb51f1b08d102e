package parser

import (
	"strings"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
)

// findHeaderRow returns the index of the first row holding a non-empty
// cell, or -1 if there is none.
func findHeaderRow(rows []sheetRow) int {
	minRow, _, _, _ := findDataBounds(rows)
	return minRow
}

// findDataBounds finds the bounding box of non-empty cells. All bounds
// are -1 when every cell is empty. Rows are indexes into rows, columns
// are indexes into the cell slices.
func findDataBounds(rows []sheetRow) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row.cells {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// cropRows restricts rows to area. Row numbers are preserved; cells are
// re-indexed so that column area.C1 becomes index 0.
func cropRows(rows []sheetRow, area *models.CellRange) []sheetRow {
	if area == nil {
		return rows
	}
	var result []sheetRow
	for _, row := range rows {
		if !area.ContainsRow(row.num) {
			continue
		}
		var cells []string
		for colIdx, cell := range row.cells {
			if area.ContainsCol(colIdx + 1) {
				cells = append(cells, cell)
			}
		}
		result = append(result, sheetRow{num: row.num, cells: cells})
	}
	return result
}
