package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
)

// Read reads records from path, choosing the reader by file extension.
func Read(path string, opts Options) ([]models.Record, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return ReadXLSX(path, opts)
	case ".csv":
		return ReadCSVFile(path, opts.Columns)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
