package models

// Color is a palette entry together with the HSL parameters it was
// generated from.
type Color struct {
	Hex        string  `json:"hex" yaml:"hex"`
	Hue        float64 `json:"hue" yaml:"hue"`
	Saturation float64 `json:"saturation" yaml:"saturation"`
	Lightness  float64 `json:"lightness" yaml:"lightness"`
}

// CategoryAnchor positions a category's left-margin label.
type CategoryAnchor struct {
	Category string  `json:"category" yaml:"category"`
	X        float64 `json:"x_margin" yaml:"x_margin"`
	Y        float64 `json:"y_anchor" yaml:"y_anchor"`
	Color    string  `json:"color" yaml:"color"`
}

// Summary reports how the input records were consumed.
type Summary struct {
	// Records is the number of records read.
	Records int `json:"records" yaml:"records"`
	// Kept is the number of records that were bucketed and counted.
	Kept int `json:"kept" yaml:"kept"`
	// Invalid is the number of records dropped for a missing or
	// unparseable field.
	Invalid int `json:"invalid" yaml:"invalid"`
	// OutOfRange is the number of records dropped because their year is
	// outside every bucket.
	OutOfRange int `json:"out_of_range" yaml:"out_of_range"`
	// Categories is the number of distinct categories.
	Categories int `json:"categories" yaml:"categories"`
	// Buckets is the number of time buckets.
	Buckets int `json:"buckets" yaml:"buckets"`
}

// Diagram is the complete geometry handed to a renderer.
type Diagram struct {
	// Bands holds one band per category and adjacent bucket pair, in
	// stacking order then bucket order.
	Bands []Band `json:"bands" yaml:"bands"`
	// Anchors holds one label anchor per category, in stacking order.
	Anchors []CategoryAnchor `json:"category_anchors" yaml:"category_anchors"`
	// BucketLabels are the x-axis labels, left to right.
	BucketLabels []string `json:"bucket_axis_labels" yaml:"bucket_axis_labels"`
	// BucketX are the x positions of the buckets, left to right.
	BucketX []float64 `json:"bucket_x" yaml:"bucket_x"`
	// Totals is the stack height of each bucket.
	Totals []float64 `json:"total_height_per_bucket" yaml:"total_height_per_bucket"`
	// YMax is the upper y-axis limit, including headroom.
	YMax float64 `json:"y_max" yaml:"y_max"`
	// Summary describes the run that produced the diagram (nil when built
	// from a pre-aggregated table).
	Summary *Summary `json:"summary,omitempty" yaml:"summary,omitempty"`
}
