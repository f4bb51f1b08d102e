package render

import "math"

// PointsPerInch is the number of typographic points per inch.
const PointsPerInch = 72

// InchesToPixels converts a length in inches to whole pixels at dpi.
func InchesToPixels(inches, dpi float64) int {
	return int(math.Round(inches * dpi))
}

// PointsToPixels converts a font size in points to pixels at dpi.
func PointsToPixels(points, dpi float64) float64 {
	return points * dpi / PointsPerInch
}

// estimateTextWidth approximates the rendered width of text in pixels for
// a proportional font of the given pixel size.
func estimateTextWidth(text string, fontPx float64) float64 {
	return float64(len([]rune(text))) * fontPx * 0.6
}
