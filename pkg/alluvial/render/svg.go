package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
)

// SVG renders diagrams as SVG documents.
type SVG struct {
	Style Style
}

// Render writes d as an SVG document.
func (r *SVG) Render(w io.Writer, d *models.Diagram) error {
	s := r.Style
	f := newFrame(d, s, s.SVGDPI)
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	tickPx := PointsToPixels(s.TickFontSize, s.SVGDPI)
	axisPx := PointsToPixels(s.AxisFontSize, s.SVGDPI)
	labelPx := PointsToPixels(s.LabelFontSize, s.SVGDPI)

	canvas.Start(f.width, f.height, fmt.Sprintf(`font-family="%s"`, s.FontFamily))
	canvas.Rect(0, 0, f.width, f.height, "fill:#ffffff")

	left, right := round(f.left), round(f.right)
	top, bottom := round(f.top), round(f.bottom)
	canvas.Rect(left, top, right-left, bottom-top, "fill:"+s.Background)

	// Dashed horizontal grid.
	ticks := f.yTicks(s.YTicks)
	canvas.Gid("grid")
	for _, t := range ticks {
		y := round(f.py(t))
		canvas.Line(left, y, right, y,
			fmt.Sprintf("stroke:%s;stroke-width:1;stroke-dasharray:6,4;stroke-opacity:0.7", s.GridColor))
	}
	canvas.Gend()

	canvas.Gid("bands")
	for _, b := range d.Bands {
		canvas.Path(svgPathData(f, b.Path),
			fmt.Sprintf("fill:%s;fill-opacity:%s;stroke:none", b.Color, formatFloat(b.Opacity)))
	}
	canvas.Gend()

	// Left and bottom spines only.
	axisStyle := fmt.Sprintf("stroke:%s;stroke-width:1", s.AxisColor)
	canvas.Line(left, top, left, bottom, axisStyle)
	canvas.Line(left, bottom, right, bottom, axisStyle)

	tickStyle := fmt.Sprintf("font-size:%spx;fill:%s", formatFloat(tickPx), s.TextColor)
	for i, label := range d.BucketLabels {
		x := round(f.px(d.BucketX[i]))
		canvas.Line(x, bottom, x, bottom+4, axisStyle)
		canvas.Text(x, bottom+4+round(tickPx), label, tickStyle, `text-anchor="middle"`)
	}
	for _, t := range ticks {
		y := round(f.py(t))
		canvas.Line(left-4, y, left, y, axisStyle)
		canvas.Text(left-6, y, formatTick(t), tickStyle, `text-anchor="end"`, `dy=".35em"`)
	}

	axisStyle = fmt.Sprintf("font-size:%spx;fill:%s", formatFloat(axisPx), s.TextColor)
	midX := round((f.left + f.right) / 2)
	canvas.Text(midX, bottom+round(2.8*tickPx), s.XTitle, axisStyle, `text-anchor="middle"`)
	midY := round((f.top + f.bottom) / 2)
	yTitleX := left - round(4*tickPx)
	canvas.Text(yTitleX, midY, s.YTitle, axisStyle, `text-anchor="middle"`,
		fmt.Sprintf(`transform="rotate(-90 %d %d)"`, yTitleX, midY))

	// Category labels, right-aligned at the label anchor, on a tinted box.
	canvas.Gid("labels")
	labelStyle := fmt.Sprintf("font-size:%spx;font-weight:bold;fill:#000000", formatFloat(labelPx))
	pad := labelPx / 5
	for _, a := range d.Anchors {
		x, y := f.px(a.X), f.py(a.Y)
		tw := estimateTextWidth(a.Category, labelPx)
		canvas.Rect(round(x-tw-2*pad), round(y-labelPx/2-pad), round(tw+2*pad), round(labelPx+2*pad),
			fmt.Sprintf("fill:%s;fill-opacity:%s", a.Color, formatFloat(s.LabelAlpha)))
		canvas.Text(round(x-pad), round(y), a.Category, labelStyle, `text-anchor="end"`, `dy=".35em"`)
	}
	canvas.Gend()

	canvas.End()
	return ew.err
}

// svgPathData converts a path to SVG path data in canvas pixels.
func svgPathData(f frame, p models.Path) string {
	var b strings.Builder
	for _, cmd := range p {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(cmd.Op))
		for _, pt := range cmd.Points {
			x, y := f.point(pt)
			fmt.Fprintf(&b, " %.2f,%.2f", x, y)
		}
	}
	return b.String()
}

func round(v float64) int {
	return int(math.Round(v))
}
