package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
	"github.com/xuri/excelize/v2"
)

// ParseReference parses a range reference with an optional sheet name.
// Accepted forms: A1:D10, $A$1:$D$10, Sheet1!A1:D10, 'My Sheet'!$A$1:$D$10.
// The returned sheet name is empty when the reference has none.
func ParseReference(ref string) (string, *models.CellRange, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", nil, fmt.Errorf("%w: empty reference", ErrInvalidRange)
	}

	var sheet string
	rangeStr := ref
	// Split by ! to separate sheet name and range
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		rangeStr = ref[idx+1:]
	}

	area, err := ParseRange(rangeStr)
	if err != nil {
		return "", nil, err
	}
	return sheet, area, nil
}

// ParseRange parses a range string like $A$1:$D$10 to a CellRange.
// The corners may be given in any order.
func ParseRange(rangeStr string) (*models.CellRange, error) {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRange, rangeStr)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidRange, rangeStr, err)
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidRange, rangeStr, err)
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return &models.CellRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, nil
}
