// Package parser reads survey records from spreadsheet and CSV files.
package parser

import "github.com/ukaji3/alluvial-go/pkg/alluvial/models"

const (
	// DefaultCategoryColumn is the header of the category column.
	DefaultCategoryColumn = "Topic"
	// DefaultYearColumn is the header of the year column.
	DefaultYearColumn = "Publication Year"
)

// Columns names the header cells to read. Matching ignores case and
// surrounding space.
type Columns struct {
	Category string
	Year     string
}

// DefaultColumns returns the column names used by the survey workbooks.
func DefaultColumns() Columns {
	return Columns{
		Category: DefaultCategoryColumn,
		Year:     DefaultYearColumn,
	}
}

// Options configures reading.
type Options struct {
	// Columns names the category and year columns.
	Columns Columns
	// Sheet is the worksheet to read. Empty means the first sheet.
	// Ignored for CSV input.
	Sheet string
	// Range restricts reading to a region of the sheet. Nil means the
	// whole sheet. Ignored for CSV input.
	Range *models.CellRange
}

// DefaultOptions returns default reading options.
func DefaultOptions() Options {
	return Options{
		Columns: DefaultColumns(),
	}
}
