package alluvial

import (
	"fmt"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
)

// Layout holds the stacked extent of every category in every bucket.
type Layout struct {
	order   Order
	buckets []models.TimeBucket
	extents [][]models.Extent // [category][bucket]
	totals  []int
}

// ComputeLayout stacks the categories of each bucket in the table's
// order. Each bucket is stacked independently.
func ComputeLayout(t *CountTable) (*Layout, error) {
	if t == nil || t.order.Len() == 0 {
		return nil, fmt.Errorf("%w: layout needs at least one category", ErrInvalidInput)
	}
	if len(t.buckets) == 0 {
		return nil, fmt.Errorf("%w: layout needs at least one bucket", ErrInvalidInput)
	}

	n := t.order.Len()
	l := &Layout{
		order:   t.order,
		buckets: t.Buckets(),
		extents: make([][]models.Extent, n),
		totals:  make([]int, len(t.buckets)),
	}
	for c := range l.extents {
		l.extents[c] = make([]models.Extent, len(t.buckets))
	}

	column := make([]int, n)
	for b := range t.buckets {
		for c := 0; c < n; c++ {
			column[c] = t.counts[c][b]
		}
		extents, total := stack(column)
		for c, e := range extents {
			l.extents[c][b] = e
		}
		l.totals[b] = total
	}
	return l, nil
}

// stack folds counts, in order, into adjacent extents starting at 0.
func stack(counts []int) ([]models.Extent, int) {
	extents := make([]models.Extent, len(counts))
	offset := 0
	for i, n := range counts {
		extents[i] = models.Extent{Bottom: offset, Top: offset + n}
		offset += n
	}
	return extents, offset
}

// Order returns the stacking order.
func (l *Layout) Order() Order {
	return l.order
}

// Buckets returns the buckets in left-to-right order.
func (l *Layout) Buckets() []models.TimeBucket {
	return append([]models.TimeBucket(nil), l.buckets...)
}

// Extent returns the extent of category c in bucket b.
func (l *Layout) Extent(c, b int) models.Extent {
	return l.extents[c][b]
}

// Total returns the stack height of bucket b.
func (l *Layout) Total(b int) int {
	return l.totals[b]
}

// Totals returns the stack height of every bucket.
func (l *Layout) Totals() []int {
	return append([]int(nil), l.totals...)
}

// Anchor returns the label position of category c: the middle of its
// extent in the first bucket.
func (l *Layout) Anchor(c int) float64 {
	e := l.extents[c][0]
	return float64(e.Bottom) + float64(e.Height())/2
}
