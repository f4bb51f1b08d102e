package render

import (
	"math"

	"github.com/aclements/go-moremath/scale"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
)

// frame maps diagram coordinates to canvas pixels. Pixel y grows
// downward; diagram y grows upward from the bottom of the stack.
type frame struct {
	width, height            int
	left, right, top, bottom float64
	x                        scale.Linear
	y                        scale.Linear
}

func newFrame(d *models.Diagram, s Style, dpi float64) frame {
	w := InchesToPixels(s.WidthInches, dpi)
	h := InchesToPixels(s.HeightInches, dpi)

	xMin, xMax := 0.0, 1.0
	if len(d.BucketX) > 0 {
		xMin, xMax = d.BucketX[0], d.BucketX[len(d.BucketX)-1]
	}
	span := xMax - xMin
	if span <= 0 {
		span = 1
	}
	yMax := d.YMax
	if !(yMax > 0) {
		yMax = 1
	}

	return frame{
		width:  w,
		height: h,
		left:   s.MarginLeft * float64(w),
		right:  s.MarginRight * float64(w),
		top:    (1 - s.MarginTop) * float64(h),
		bottom: (1 - s.MarginBottom) * float64(h),
		x:      scale.Linear{Min: xMin - s.XPadding*span, Max: xMax + s.XPadding*span},
		y:      scale.Linear{Min: 0, Max: yMax},
	}
}

// px maps a diagram x to a canvas x.
func (f frame) px(x float64) float64 {
	return f.left + f.x.Map(x)*(f.right-f.left)
}

// py maps a diagram y to a canvas y.
func (f frame) py(y float64) float64 {
	return f.bottom - f.y.Map(y)*(f.bottom-f.top)
}

func (f frame) point(p models.Point) (float64, float64) {
	return f.px(p.X), f.py(p.Y)
}

// yTicks returns up to n tick positions on the y axis.
func (f frame) yTicks(n int) []float64 {
	return YTicks(f.y.Max, n)
}

// YTicks returns "nice" tick positions in [0, yMax], at most n of them.
func YTicks(yMax float64, n int) []float64 {
	if !(yMax > 0) || n < 1 {
		return []float64{0}
	}
	ls := scale.Linear{Min: 0, Max: yMax}
	major, _ := ls.Ticks(scale.TickOptions{Max: n})
	ticks := make([]float64, 0, len(major))
	for _, t := range major {
		if t >= 0 && t <= yMax+1e-9 {
			ticks = append(ticks, t)
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return formatInt(int64(v))
	}
	return formatFloat(v)
}
