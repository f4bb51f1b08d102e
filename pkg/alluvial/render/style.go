// Package render draws alluvial diagrams as SVG or PNG images.
package render

// Style controls the figure layout and appearance. Margins are fractions
// of the figure size measured from the left (MarginLeft, MarginRight) and
// from the bottom (MarginBottom, MarginTop), as in a plotting subplot.
type Style struct {
	WidthInches  float64 `mapstructure:"width_inches"`
	HeightInches float64 `mapstructure:"height_inches"`
	// DPI is the raster resolution for PNG output.
	DPI float64 `mapstructure:"dpi"`
	// SVGDPI is the pixel density used to size SVG output.
	SVGDPI float64 `mapstructure:"svg_dpi"`

	MarginLeft   float64 `mapstructure:"margin_left"`
	MarginRight  float64 `mapstructure:"margin_right"`
	MarginTop    float64 `mapstructure:"margin_top"`
	MarginBottom float64 `mapstructure:"margin_bottom"`
	// XPadding pads the bucket range on both sides, as a fraction of it.
	XPadding float64 `mapstructure:"x_padding"`

	Background string `mapstructure:"background"`
	GridColor  string `mapstructure:"grid_color"`
	AxisColor  string `mapstructure:"axis_color"`
	TextColor  string `mapstructure:"text_color"`
	FontFamily string `mapstructure:"font_family"`

	// Font sizes in points.
	TickFontSize  float64 `mapstructure:"tick_font_size"`
	AxisFontSize  float64 `mapstructure:"axis_font_size"`
	LabelFontSize float64 `mapstructure:"label_font_size"`

	XTitle string `mapstructure:"x_title"`
	YTitle string `mapstructure:"y_title"`
	// LabelAlpha is the opacity of the colored box behind category labels.
	LabelAlpha float64 `mapstructure:"label_alpha"`
	// YTicks is the maximum number of y-axis ticks.
	YTicks int `mapstructure:"y_ticks"`
}

// DefaultStyle returns the style of the published survey figures.
func DefaultStyle() Style {
	return Style{
		WidthInches:   18,
		HeightInches:  11,
		DPI:           300,
		SVGDPI:        96,
		MarginLeft:    0.2,
		MarginRight:   0.95,
		MarginTop:     0.92,
		MarginBottom:  0.1,
		XPadding:      0.05,
		Background:    "#f8f9fa",
		GridColor:     "#b0b0b0",
		AxisColor:     "#000000",
		TextColor:     "#000000",
		FontFamily:    "DejaVu Sans, Arial, sans-serif",
		TickFontSize:  12,
		AxisFontSize:  12,
		LabelFontSize: 10,
		XTitle:        "Publication year",
		YTitle:        "Number of papers",
		LabelAlpha:    0.3,
		YTicks:        8,
	}
}
