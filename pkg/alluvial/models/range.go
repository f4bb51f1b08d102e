package models

// CellRange represents cell coordinate bounds of a sheet region.
type CellRange struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// ContainsRow reports whether the 1-based row r is inside the range.
func (c CellRange) ContainsRow(r int) bool {
	return r >= c.R1 && r <= c.R2
}

// ContainsCol reports whether the 1-based column col is inside the range.
func (c CellRange) ContainsCol(col int) bool {
	return col >= c.C1 && col <= c.C2
}
