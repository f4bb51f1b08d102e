// Package alluvial lays out time-bucketed categorical flow diagrams.
//
// Records are assigned to half-open time buckets, counted per category
// and bucket, stacked in a single fixed category order and connected by
// curved bands between adjacent buckets.
package alluvial

import (
	"go.uber.org/zap"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/parser"
)

// DefaultBoundaries are the bucket boundaries of the survey charts:
// [2010,2015), [2015,2020), [2020,2025).
var DefaultBoundaries = []int{2010, 2015, 2020, 2025}

const (
	// DefaultOpacity is the fill alpha of every band.
	DefaultOpacity = 0.8
	// DefaultLabelX is the x position of the category labels, left of
	// the first bucket.
	DefaultLabelX = -0.05
	// DefaultHeadroom is the y-axis headroom as a fraction of the
	// largest single count.
	DefaultHeadroom = 0.1
)

// Options configures diagram generation.
type Options struct {
	// Boundaries are the ordered bucket boundaries [b0, b1, ..., bn].
	Boundaries []int
	// Colors is the palette scheme.
	Colors ColorScheme
	// Opacity is the band fill alpha.
	Opacity float64
	// LabelX is the x position of the category label anchors.
	LabelX float64
	// Headroom is added above the tallest bucket, as a fraction of the
	// largest single count.
	Headroom float64
	// Read configures file reading for GenerateFromFile.
	Read parser.Options
	// Logger receives progress and dropped-record messages.
	// If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Boundaries: append([]int(nil), DefaultBoundaries...),
		Colors:     DefaultColorScheme(),
		Opacity:    DefaultOpacity,
		LabelX:     DefaultLabelX,
		Headroom:   DefaultHeadroom,
		Read:       parser.DefaultOptions(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
