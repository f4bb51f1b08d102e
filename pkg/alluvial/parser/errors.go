package parser

import (
	"errors"
	"fmt"
)

// ErrMissingColumn indicates a required column is absent from the header row.
var ErrMissingColumn = errors.New("missing column")

// ErrInvalidRange indicates a cell range reference could not be parsed.
var ErrInvalidRange = errors.New("invalid cell range")

// ErrUnsupportedFormat indicates the input file extension is not supported.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ErrNoHeader indicates the input has no non-empty row to use as a header.
var ErrNoHeader = errors.New("no header row")

// ColumnError reports which required column was not found.
type ColumnError struct {
	Column string
	Header []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%v: %q (header: %q)", ErrMissingColumn, e.Column, e.Header)
}

func (e *ColumnError) Unwrap() error {
	return ErrMissingColumn
}
