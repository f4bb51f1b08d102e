package models

// Record is a single source row as read from a spreadsheet or CSV file.
// Empty strings mean the value is missing.
type Record struct {
	// Row is the source row index (1-based, header included).
	Row int `json:"row,omitempty" yaml:"row,omitempty"`
	// Category is the category label.
	Category string `json:"category" yaml:"category"`
	// Year is the raw year cell text.
	Year string `json:"year" yaml:"year"`
}

// TimeBucket is a half-open time window [Start, End).
type TimeBucket struct {
	// Label is the axis label, e.g. "2010-2014".
	Label string `json:"label" yaml:"label"`
	// Start is the first year in the window.
	Start int `json:"start" yaml:"start"`
	// End is the first year after the window.
	End int `json:"end" yaml:"end"`
}

// Contains reports whether year falls inside the window.
func (b TimeBucket) Contains(year int) bool {
	return year >= b.Start && year < b.End
}

// FlowRow is one cell of a dense (category, bucket) count table.
type FlowRow struct {
	Category string `json:"category" yaml:"category"`
	Bucket   string `json:"bucket" yaml:"bucket"`
	Count    int    `json:"count" yaml:"count"`
}
