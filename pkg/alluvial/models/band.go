package models

// Band is the curved flow band of one category between two adjacent
// buckets.
type Band struct {
	// Category is the category the band belongs to.
	Category string `json:"category" yaml:"category"`
	// From is the index of the left bucket.
	From int `json:"bucket_from_index" yaml:"bucket_from_index"`
	// To is the index of the right bucket (From+1).
	To int `json:"bucket_to_index" yaml:"bucket_to_index"`

	X0 float64 `json:"x0" yaml:"x0"`
	X1 float64 `json:"x1" yaml:"x1"`
	// YB0 and YT0 are the bottom and top of the category at the left bucket.
	YB0 float64 `json:"yb0" yaml:"yb0"`
	YT0 float64 `json:"yt0" yaml:"yt0"`
	// YB1 and YT1 are the bottom and top of the category at the right bucket.
	YB1 float64 `json:"yb1" yaml:"yb1"`
	YT1 float64 `json:"yt1" yaml:"yt1"`

	// Color is the fill color as a hex string.
	Color string `json:"color" yaml:"color"`
	// Opacity is the uniform fill alpha.
	Opacity float64 `json:"opacity" yaml:"opacity"`

	// Path is the closed boundary.
	Path Path `json:"path" yaml:"path"`
	// PathSpec is Path as SVG path data.
	PathSpec string `json:"path_spec" yaml:"path_spec"`
}

func (b Band) controlX() (float64, float64) {
	dx := b.X1 - b.X0
	return b.X0 + dx/3, b.X1 - dx/3
}

// BottomAt evaluates the bottom edge at t in [0, 1], t=0 being the left
// bucket.
func (b Band) BottomAt(t float64) Point {
	c0, c1 := b.controlX()
	return CubicAt(
		Point{b.X0, b.YB0}, Point{c0, b.YB0},
		Point{c1, b.YB1}, Point{b.X1, b.YB1}, t)
}

// TopAt evaluates the top edge at t in [0, 1], t=0 being the left bucket.
func (b Band) TopAt(t float64) Point {
	c0, c1 := b.controlX()
	return CubicAt(
		Point{b.X0, b.YT0}, Point{c0, b.YT0},
		Point{c1, b.YT1}, Point{b.X1, b.YT1}, t)
}

// ThicknessAt returns the vertical distance between the edges at t.
// Both edges share the same x(t), so this is the band's cross-section.
func (b Band) ThicknessAt(t float64) float64 {
	return b.TopAt(t).Y - b.BottomAt(t).Y
}
