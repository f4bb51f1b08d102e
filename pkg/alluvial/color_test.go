package alluvial

import (
	"regexp"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestAssignColorsDeterministic(t *testing.T) {
	order := NewOrder([]string{"a", "b", "c", "d", "e", "f", "g"})
	first := AssignColors(order, DefaultColorScheme())
	second := AssignColors(order, DefaultColorScheme())
	assert.Equal(t, first, second)
	for _, c := range first {
		assert.Regexp(t, hexColor, c.Hex)
	}
}

func TestAssignColorsDistinctUpToFive(t *testing.T) {
	for n := 1; n <= 5; n++ {
		names := []string{"a", "b", "c", "d", "e"}[:n]
		colors := AssignColors(NewOrder(names), DefaultColorScheme())
		seen := make(map[string]bool)
		for _, c := range colors {
			assert.False(t, seen[c.Hex], "duplicate color %s with %d categories", c.Hex, n)
			seen[c.Hex] = true
		}
	}
}

func TestColorRamp(t *testing.T) {
	scheme := DefaultColorScheme()
	wantLightness := []float64{0.9, 0.75, 0.6, 0.45, 0.3}
	for i, want := range wantLightness {
		c := scheme.ColorAt(i)
		assert.InDelta(t, want, c.Lightness, 1e-9, "lightness of %d", i)
		assert.InDelta(t, 0.7, c.Saturation, 1e-9, "saturation of %d", i)
		assert.Equal(t, 210.0, c.Hue)
	}
}

func TestColorPeriodFive(t *testing.T) {
	order := NewOrder([]string{"a", "b", "c", "d", "e", "f", "g"})
	colors := AssignColors(order, DefaultColorScheme())

	// Index 5 repeats index 0's lightness step in the next saturation tier.
	assert.InDelta(t, colors[0].Lightness, colors[5].Lightness, 1e-9)
	assert.InDelta(t, 0.7, colors[0].Saturation, 1e-9)
	assert.InDelta(t, 0.6, colors[5].Saturation, 1e-9)
	assert.NotEqual(t, colors[0].Hex, colors[5].Hex)
}

func TestColorSaturationFloor(t *testing.T) {
	scheme := DefaultColorScheme()
	for i := 0; i < 60; i++ {
		c := scheme.ColorAt(i)
		assert.GreaterOrEqual(t, c.Saturation, 0.3, "saturation of %d", i)
	}
	assert.Equal(t, 0.3, scheme.ColorAt(25).Saturation)
	assert.Equal(t, 0.3, scheme.ColorAt(59).Saturation)

	low := ColorScheme{Hue: 0, BaseSaturation: 0.1}
	assert.Equal(t, 0.3, low.ColorAt(0).Saturation)
}

func TestColorHexMatchesHSL(t *testing.T) {
	scheme := DefaultColorScheme()
	for i := 0; i < 10; i++ {
		c := scheme.ColorAt(i)
		parsed, err := colorful.Hex(c.Hex)
		require.NoError(t, err)
		want := colorful.Hsl(c.Hue, c.Saturation, c.Lightness)
		// 8-bit quantization keeps each channel within half a step.
		assert.InDelta(t, want.R, parsed.R, 1.0/255, "red of %d", i)
		assert.InDelta(t, want.G, parsed.G, 1.0/255, "green of %d", i)
		assert.InDelta(t, want.B, parsed.B, 1.0/255, "blue of %d", i)
		assert.Greater(t, parsed.B, parsed.R, "color %d should be blue", i)
	}
}
