package alluvial

import (
	"fmt"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
)

// CountTable is a dense category × bucket count table. Every pair has a
// cell; pairs absent from the source hold 0.
type CountTable struct {
	order   Order
	buckets []models.TimeBucket
	counts  [][]int // [category][bucket]
}

// Aggregate counts tagged records per (category, bucket). The category
// order is derived here, once, from every category present.
func Aggregate(tagged []TaggedRecord, buckets []models.TimeBucket) (*CountTable, error) {
	if len(buckets) == 0 {
		return nil, fmt.Errorf("%w: no buckets", ErrInvalidInput)
	}
	categories := make([]string, 0, len(tagged))
	for _, r := range tagged {
		categories = append(categories, r.Category)
	}
	order := NewOrder(categories)
	if order.Len() == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrInvalidInput)
	}

	t := newCountTable(order, buckets)
	for _, r := range tagged {
		if r.Bucket < 0 || r.Bucket >= len(buckets) {
			return nil, fmt.Errorf("%w: row %d: bucket index %d out of range", ErrInvalidInput, r.Row, r.Bucket)
		}
		c, _ := order.Index(r.Category)
		t.counts[c][r.Bucket]++
	}
	return t, nil
}

// NewCountTable builds a table from pre-aggregated rows. Every row must
// name a known category and bucket label and carry a non-negative count;
// cells not mentioned are zero-filled.
func NewCountTable(rows []models.FlowRow, buckets []models.TimeBucket, categories []string) (*CountTable, error) {
	if len(buckets) == 0 {
		return nil, fmt.Errorf("%w: no buckets", ErrInvalidInput)
	}
	order := NewOrder(categories)
	if order.Len() == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrInvalidInput)
	}

	bucketIdx := make(map[string]int, len(buckets))
	for i, b := range buckets {
		if _, dup := bucketIdx[b.Label]; dup {
			return nil, fmt.Errorf("%w: duplicate bucket label %q", ErrInvalidInput, b.Label)
		}
		bucketIdx[b.Label] = i
	}

	t := newCountTable(order, buckets)
	seen := make(map[[2]int]bool, len(rows))
	for _, row := range rows {
		c, ok := order.Index(row.Category)
		if !ok {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, row.Category)
		}
		b, ok := bucketIdx[row.Bucket]
		if !ok {
			return nil, fmt.Errorf("%w: unknown bucket %q", ErrInvalidInput, row.Bucket)
		}
		if row.Count < 0 {
			return nil, fmt.Errorf("%w: negative count %d for (%q, %q)", ErrInvalidInput, row.Count, row.Category, row.Bucket)
		}
		key := [2]int{c, b}
		if seen[key] {
			return nil, fmt.Errorf("%w: duplicate cell (%q, %q)", ErrInvalidInput, row.Category, row.Bucket)
		}
		seen[key] = true
		t.counts[c][b] = row.Count
	}
	return t, nil
}

func newCountTable(order Order, buckets []models.TimeBucket) *CountTable {
	counts := make([][]int, order.Len())
	for i := range counts {
		counts[i] = make([]int, len(buckets))
	}
	return &CountTable{
		order:   order,
		buckets: append([]models.TimeBucket(nil), buckets...),
		counts:  counts,
	}
}

// Order returns the category stacking order.
func (t *CountTable) Order() Order {
	return t.order
}

// Buckets returns the buckets in left-to-right order.
func (t *CountTable) Buckets() []models.TimeBucket {
	return append([]models.TimeBucket(nil), t.buckets...)
}

// Count returns the count of category index c in bucket index b.
func (t *CountTable) Count(c, b int) int {
	return t.counts[c][b]
}

// Counts returns a copy of category c's counts, one per bucket.
func (t *CountTable) Counts(c int) []int {
	return append([]int(nil), t.counts[c]...)
}

// MaxCount returns the largest single cell.
func (t *CountTable) MaxCount() int {
	largest := 0
	for _, row := range t.counts {
		for _, n := range row {
			if n > largest {
				largest = n
			}
		}
	}
	return largest
}

// Rows returns every cell, category-major in stacking order.
func (t *CountTable) Rows() []models.FlowRow {
	rows := make([]models.FlowRow, 0, t.order.Len()*len(t.buckets))
	for c := 0; c < t.order.Len(); c++ {
		for b, bucket := range t.buckets {
			rows = append(rows, models.FlowRow{
				Category: t.order.Name(c),
				Bucket:   bucket.Label,
				Count:    t.counts[c][b],
			})
		}
	}
	return rows
}
