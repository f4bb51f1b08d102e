package alluvial

import (
	"fmt"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
)

// XPositions returns n evenly spaced positions spanning [0, 1].
// A single bucket sits at 0.
func XPositions(n int) []float64 {
	if n <= 0 {
		return nil
	}
	xs := make([]float64, n)
	if n == 1 {
		return xs
	}
	step := 1 / float64(n-1)
	for i := range xs {
		xs[i] = float64(i) * step
	}
	xs[n-1] = 1
	return xs
}

// BuildBands returns one band per category and adjacent bucket pair,
// category-major in stacking order. Bands of zero height are kept.
func BuildBands(l *Layout, colors []models.Color, xs []float64, opacity float64) ([]models.Band, error) {
	n := l.order.Len()
	if len(colors) != n {
		return nil, fmt.Errorf("%w: %d colors for %d categories", ErrInvalidInput, len(colors), n)
	}
	if len(xs) != len(l.buckets) {
		return nil, fmt.Errorf("%w: %d x positions for %d buckets", ErrInvalidInput, len(xs), len(l.buckets))
	}

	pairs := len(l.buckets) - 1
	if pairs < 0 {
		pairs = 0
	}
	bands := make([]models.Band, 0, n*pairs)
	for c := 0; c < n; c++ {
		for j := 0; j < pairs; j++ {
			from, to := l.extents[c][j], l.extents[c][j+1]
			band := models.Band{
				Category: l.order.Name(c),
				From:     j,
				To:       j + 1,
				X0:       xs[j],
				X1:       xs[j+1],
				YB0:      float64(from.Bottom),
				YT0:      float64(from.Top),
				YB1:      float64(to.Bottom),
				YT1:      float64(to.Top),
				Color:    colors[c].Hex,
				Opacity:  opacity,
			}
			band.Path = bandPath(band)
			band.PathSpec = band.Path.SVG()
			bands = append(bands, band)
		}
	}
	return bands, nil
}

// bandPath traces the band outline: the bottom edge left to right, up
// the right bucket, the top edge back right to left, then closed. Control
// points are displaced horizontally only, so each edge stays between its
// end heights.
func bandPath(b models.Band) models.Path {
	dx := b.X1 - b.X0
	c0, c1 := b.X0+dx/3, b.X1-dx/3
	return models.Path{
		{Op: models.MoveTo, Points: []models.Point{{X: b.X0, Y: b.YB0}}},
		{Op: models.CubicTo, Points: []models.Point{
			{X: c0, Y: b.YB0},
			{X: c1, Y: b.YB1},
			{X: b.X1, Y: b.YB1},
		}},
		{Op: models.LineTo, Points: []models.Point{{X: b.X1, Y: b.YT1}}},
		{Op: models.CubicTo, Points: []models.Point{
			{X: c1, Y: b.YT1},
			{X: c0, Y: b.YT0},
			{X: b.X0, Y: b.YT0},
		}},
		{Op: models.Close},
	}
}
