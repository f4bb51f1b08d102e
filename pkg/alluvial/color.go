package alluvial

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ukaji3/alluvial-go/pkg/alluvial/models"
)

// Palette ramp constants. Lightness steps down over a period of
// lightnessSteps categories; saturation drops one tier per period and
// never goes below minSaturation.
const (
	lightnessSteps    = 5
	maxLightness      = 0.9
	lightnessStep     = 0.15
	saturationStep    = 0.1
	minSaturation     = 0.3
	defaultHue        = 210
	defaultSaturation = 0.7
)

// ColorScheme is a monochromatic palette family.
type ColorScheme struct {
	// Hue in degrees [0, 360).
	Hue float64
	// BaseSaturation is the saturation of the first tier.
	BaseSaturation float64
}

// DefaultColorScheme returns the blue family used by the survey charts.
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Hue:            defaultHue,
		BaseSaturation: defaultSaturation,
	}
}

// ColorAt returns the color of the category at position i.
//
// Colors repeat their lightness every five categories and only the
// saturation tier tells them apart; with more than five categories two
// entries can coincide once saturation reaches its floor.
func (s ColorScheme) ColorAt(i int) models.Color {
	lightness := maxLightness - float64(i%lightnessSteps)*lightnessStep
	saturation := math.Max(minSaturation, s.BaseSaturation-float64(i/lightnessSteps)*saturationStep)
	return models.Color{
		Hex:        colorful.Hsl(s.Hue, saturation, lightness).Clamped().Hex(),
		Hue:        s.Hue,
		Saturation: saturation,
		Lightness:  lightness,
	}
}

// AssignColors returns one color per category, in order.
func AssignColors(order Order, scheme ColorScheme) []models.Color {
	colors := make([]models.Color, order.Len())
	for i := range colors {
		colors[i] = scheme.ColorAt(i)
	}
	return colors
}
