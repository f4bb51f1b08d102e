package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
)

// PNG renders diagrams as PNG images. Text uses a fixed 7x13 bitmap face
// regardless of DPI.
type PNG struct {
	Style Style
}

// Render writes d as a PNG image.
func (r *PNG) Render(w io.Writer, d *models.Diagram) error {
	img := r.Draw(d)
	return png.Encode(w, img)
}

// Draw rasterizes d.
func (r *PNG) Draw(d *models.Diagram) *image.RGBA {
	s := r.Style
	f := newFrame(d, s, s.DPI)
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	left, right := round(f.left), round(f.right)
	top, bottom := round(f.top), round(f.bottom)
	fillRect(img, image.Rect(left, top, right, bottom), rgba(parseColor(s.Background), 1))

	line := int(math.Max(1, math.Round(s.DPI/100)))
	ticks := f.yTicks(s.YTicks)
	grid := rgba(parseColor(s.GridColor), 0.7)
	dash, gap := 6*line, 4*line
	for _, t := range ticks {
		y := round(f.py(t))
		for x := left; x < right; x += dash + gap {
			fillRect(img, image.Rect(x, y, min(x+dash, right), y+line), grid)
		}
	}

	for _, b := range d.Bands {
		fillPath(img, f, b.Path, rgba(parseColor(b.Color), b.Opacity))
	}

	axis := rgba(parseColor(s.AxisColor), 1)
	fillRect(img, image.Rect(left-line, top, left, bottom+line), axis)
	fillRect(img, image.Rect(left-line, bottom, right, bottom+line), axis)

	face := basicfont.Face7x13
	ascent := face.Metrics().Ascent.Ceil()
	text := image.NewUniform(rgba(parseColor(s.TextColor), 1))
	dr := &font.Drawer{Dst: img, Src: text, Face: face}

	for i, label := range d.BucketLabels {
		x := round(f.px(d.BucketX[i]))
		fillRect(img, image.Rect(x, bottom, x+line, bottom+4*line), axis)
		tw := dr.MeasureString(label).Ceil()
		dr.Dot = fixed.P(x-tw/2, bottom+4*line+ascent+2)
		dr.DrawString(label)
	}
	for _, t := range ticks {
		y := round(f.py(t))
		fillRect(img, image.Rect(left-4*line, y, left, y+line), axis)
		label := formatTick(t)
		tw := dr.MeasureString(label).Ceil()
		dr.Dot = fixed.P(left-4*line-2-tw, y+ascent/2)
		dr.DrawString(label)
	}

	tw := dr.MeasureString(s.XTitle).Ceil()
	dr.Dot = fixed.P(round((f.left+f.right)/2)-tw/2, bottom+4*line+3*ascent)
	dr.DrawString(s.XTitle)
	dr.Dot = fixed.P(left, top-ascent/2)
	dr.DrawString(s.YTitle)

	black := image.NewUniform(color.Black)
	for _, a := range d.Anchors {
		x, y := round(f.px(a.X)), round(f.py(a.Y))
		tw := dr.MeasureString(a.Category).Ceil()
		box := image.Rect(x-tw-6, y-ascent/2-3, x-2, y+ascent/2+3)
		fillRect(img, box, rgba(parseColor(a.Color), s.LabelAlpha))
		label := &font.Drawer{Dst: img, Src: black, Face: face, Dot: fixed.P(x-tw-4, y+ascent/2)}
		label.DrawString(a.Category)
	}
	return img
}

// fillPath rasterizes a closed path with src color composited over dst.
func fillPath(dst *image.RGBA, f frame, p models.Path, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	for _, cmd := range p {
		switch cmd.Op {
		case models.MoveTo:
			x, y := f.point(cmd.Points[0])
			z.MoveTo(float32(x), float32(y))
		case models.LineTo:
			x, y := f.point(cmd.Points[0])
			z.LineTo(float32(x), float32(y))
		case models.CubicTo:
			x1, y1 := f.point(cmd.Points[0])
			x2, y2 := f.point(cmd.Points[1])
			x3, y3 := f.point(cmd.Points[2])
			z.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3))
		case models.Close:
			z.ClosePath()
		}
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func fillRect(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// rgba converts c with opacity alpha to a non-premultiplied color.
func rgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(math.Max(0, math.Min(1, alpha)) * 255))}
}
