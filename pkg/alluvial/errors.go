package alluvial

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates the data cannot be laid out: no categories,
// no buckets, too few bucket boundaries, or every record dropped.
var ErrInvalidInput = errors.New("invalid input")

// ErrConfiguration indicates malformed configuration, such as bucket
// boundaries that are not strictly increasing.
var ErrConfiguration = errors.New("configuration error")

// ErrMissingValue indicates a required record field is empty.
var ErrMissingValue = errors.New("missing value")

// ErrUnparseable indicates a record field could not be parsed.
var ErrUnparseable = errors.New("unparseable value")

// ValidationError reports a record dropped during bucketing.
type ValidationError struct {
	Row   int
	Field string // "category" or "year"
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("row %d: %s: %v", e.Row, e.Field, e.Err)
	}
	return fmt.Sprintf("row %d: %s %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError.
func NewValidationError(row int, field, value string, err error) *ValidationError {
	return &ValidationError{
		Row:   row,
		Field: field,
		Value: value,
		Err:   err,
	}
}
