package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/alluvial-go/pkg/alluvial"
	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
)

func smallStyle() Style {
	s := DefaultStyle()
	s.WidthInches, s.HeightInches = 4, 3
	s.DPI, s.SVGDPI = 50, 50
	return s
}

func sampleDiagram(t *testing.T) *models.Diagram {
	t.Helper()
	records := []models.Record{
		{Row: 2, Category: "Energy", Year: "2011"},
		{Row: 3, Category: "Energy", Year: "2016"},
		{Row: 4, Category: "Water", Year: "2012"},
		{Row: 5, Category: "Water", Year: "2013"},
		{Row: 6, Category: "Air", Year: "2021"},
	}
	d, err := alluvial.Generate(records, alluvial.DefaultOptions())
	require.NoError(t, err)
	return d
}

func TestForFormat(t *testing.T) {
	r, err := ForFormat("SVG", DefaultStyle())
	require.NoError(t, err)
	assert.IsType(t, &SVG{}, r)

	r, err = ForFormat("png", DefaultStyle())
	require.NoError(t, err)
	assert.IsType(t, &PNG{}, r)

	_, err = ForFormat("pdf", DefaultStyle())
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSVGRender(t *testing.T) {
	d := sampleDiagram(t)
	var buf bytes.Buffer
	require.NoError(t, (&SVG{Style: smallStyle()}).Render(&buf, d))

	out := buf.String()
	assert.Contains(t, out, `width="200"`)
	assert.Contains(t, out, `height="150"`)
	assert.Equal(t, len(d.Bands), strings.Count(out, "<path"))
	for _, a := range d.Anchors {
		assert.Contains(t, out, ">"+a.Category+"</text>")
	}
	for _, label := range d.BucketLabels {
		assert.Contains(t, out, ">"+label+"</text>")
	}
	assert.Contains(t, out, "Publication year")
	assert.Contains(t, out, "Number of papers")
	assert.Contains(t, out, "fill-opacity:0.8")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func TestSVGRenderWriteError(t *testing.T) {
	err := (&SVG{Style: smallStyle()}).Render(failingWriter{}, sampleDiagram(t))
	assert.ErrorIs(t, err, assert.AnError)
}

func TestPNGRender(t *testing.T) {
	d := sampleDiagram(t)
	s := smallStyle()
	var buf bytes.Buffer
	require.NoError(t, (&PNG{Style: s}).Render(&buf, d))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())

	// Outside the plot area stays white.
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})

	// Water spans [1, 3] at the first bucket, so its middle is painted
	// with something other than the plot background.
	f := newFrame(d, s, s.DPI)
	x, y := f.point(models.Point{X: 0, Y: 2})
	got := rgba(parseColor(s.Background), 1)
	pr, pg, pb, _ := img.At(round(x)+2, round(y)).RGBA()
	assert.NotEqual(t,
		[3]uint8{got.R, got.G, got.B},
		[3]uint8{uint8(pr >> 8), uint8(pg >> 8), uint8(pb >> 8)})
}

func TestYTicks(t *testing.T) {
	ticks := YTicks(3.2, 8)
	require.NotEmpty(t, ticks)
	assert.Equal(t, 0.0, ticks[0])
	assert.LessOrEqual(t, len(ticks), 8)
	for _, tick := range ticks {
		assert.GreaterOrEqual(t, tick, 0.0)
		assert.LessOrEqual(t, tick, 3.2)
	}

	assert.Equal(t, []float64{0}, YTicks(0, 8))
	assert.Equal(t, []float64{0}, YTicks(10, 0))
}

func TestUnits(t *testing.T) {
	assert.Equal(t, 5400, InchesToPixels(18, 300))
	assert.Equal(t, 1056, InchesToPixels(11, 96))
	assert.Equal(t, 50.0, PointsToPixels(12, 300))
	assert.InDelta(t, 30.0, estimateTextWidth("Water", 10), 1e-9)
}

func TestFormatTick(t *testing.T) {
	assert.Equal(t, "2", formatTick(2))
	assert.Equal(t, "0.5", formatTick(0.5))
}
