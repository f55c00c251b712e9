package models

// Region is the result of cropping a map.
type Region struct {
	// Source is the input name (file path, or "-" for stdin).
	Source string `json:"source,omitempty"`
	// Markers is the tightest box around the marker cells.
	Markers BoundingBox `json:"markers"`
	// Area is Markers expanded by Margin; it may exceed the grid.
	Area BoundingBox `json:"area"`
	// Lines holds the rendered rows of Area, top to bottom.
	Lines []string `json:"lines"`
}
