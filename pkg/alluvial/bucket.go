package alluvial

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
)

// NewBuckets builds the half-open windows [b_k, b_k+1) from boundaries.
func NewBuckets(boundaries []int) ([]models.TimeBucket, error) {
	if len(boundaries) < 2 {
		return nil, fmt.Errorf("%w: need at least two bucket boundaries, got %d", ErrInvalidInput, len(boundaries))
	}
	buckets := make([]models.TimeBucket, 0, len(boundaries)-1)
	for i := 1; i < len(boundaries); i++ {
		start, end := boundaries[i-1], boundaries[i]
		if end <= start {
			return nil, fmt.Errorf("%w: bucket boundaries must be strictly increasing, got %d after %d", ErrConfiguration, end, start)
		}
		buckets = append(buckets, models.TimeBucket{
			Label: fmt.Sprintf("%d-%d", start, end-1),
			Start: start,
			End:   end,
		})
	}
	return buckets, nil
}

// TaggedRecord is a record that survived bucketing.
type TaggedRecord struct {
	Row      int
	Category string
	Year     int
	Bucket   int
}

// BucketResult is the outcome of assigning records to buckets.
type BucketResult struct {
	// Tagged holds the surviving records in input order.
	Tagged []TaggedRecord
	// Invalid holds one error per record dropped for a missing or
	// unparseable field.
	Invalid []*ValidationError
	// OutOfRange counts records whose year is outside every bucket.
	OutOfRange int
}

// Bucketer maps years to time buckets.
type Bucketer struct {
	boundaries []int
	buckets    []models.TimeBucket
}

// NewBucketer validates boundaries and returns a Bucketer for them.
func NewBucketer(boundaries []int) (*Bucketer, error) {
	buckets, err := NewBuckets(boundaries)
	if err != nil {
		return nil, err
	}
	return &Bucketer{
		boundaries: append([]int(nil), boundaries...),
		buckets:    buckets,
	}, nil
}

// Buckets returns the buckets in left-to-right order.
func (b *Bucketer) Buckets() []models.TimeBucket {
	return append([]models.TimeBucket(nil), b.buckets...)
}

// Locate returns the index of the bucket containing year.
func (b *Bucketer) Locate(year int) (int, bool) {
	n := len(b.boundaries)
	if year < b.boundaries[0] || year >= b.boundaries[n-1] {
		return 0, false
	}
	// First boundary strictly greater than year closes its bucket.
	i := sort.Search(n, func(i int) bool { return b.boundaries[i] > year })
	return i - 1, true
}

// Assign tags each usable record with its bucket. Records with a missing
// category or a missing or unparseable year are reported in Invalid;
// records outside [b0, bn) are dropped and counted.
func (b *Bucketer) Assign(records []models.Record) BucketResult {
	var res BucketResult
	for _, r := range records {
		category := strings.TrimSpace(r.Category)
		if category == "" {
			res.Invalid = append(res.Invalid, NewValidationError(r.Row, "category", r.Category, ErrMissingValue))
			continue
		}
		year, err := parseYear(r.Year)
		if err != nil {
			res.Invalid = append(res.Invalid, NewValidationError(r.Row, "year", r.Year, err))
			continue
		}
		idx, ok := b.Locate(year)
		if !ok {
			res.OutOfRange++
			continue
		}
		res.Tagged = append(res.Tagged, TaggedRecord{
			Row:      r.Row,
			Category: category,
			Year:     year,
			Bucket:   idx,
		})
	}
	return res
}

// parseYear parses a year cell. Integer text is used as is; decimal text
// such as "2015.0" is truncated toward zero.
func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMissingValue
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		if i < math.MinInt32 || i > math.MaxInt32 {
			return 0, ErrUnparseable
		}
		return int(i), nil
	}
	// Try float
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, ErrUnparseable
	}
	return int(math.Trunc(f)), nil
}
