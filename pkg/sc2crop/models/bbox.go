package models

// Margin is the number of rows and columns added on every side of the
// marker box before slicing.
const Margin = 3

// BoundingBox represents cell coordinate bounds within a grid.
type BoundingBox struct {
	// R1 is the first row (0-based).
	R1 int `json:"r1"`
	// C1 is the first column (0-based).
	C1 int `json:"c1"`
	// R2 is the last row (0-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the last column (0-based, inclusive).
	C2 int `json:"c2"`
}

// Expand returns the box grown by n cells on all four sides.
// The result may extend past the grid, including negative indices.
func (b BoundingBox) Expand(n int) BoundingBox {
	return BoundingBox{
		R1: b.R1 - n,
		C1: b.C1 - n,
		R2: b.R2 + n,
		C2: b.C2 + n,
	}
}

// Height returns the number of rows covered by the box.
func (b BoundingBox) Height() int {
	return b.R2 - b.R1 + 1
}

// Width returns the number of columns covered by the box.
func (b BoundingBox) Width() int {
	return b.C2 - b.C1 + 1
}
