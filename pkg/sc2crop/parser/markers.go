package parser

import (
	"slices"

	"github.com/ukaji3/sc2crop-go/pkg/sc2crop/models"
)

// Marker symbols. PrimaryMarker takes precedence within a row.
const (
	PrimaryMarker   = '0'
	SecondaryMarker = '2'
)

// ScanMarkers finds the bounding box of the marker cells in g.
// It reports false when the grid holds no marker.
//
// Column bounds for a row come from PrimaryMarker when the row contains
// it, and from SecondaryMarker only otherwise. A row holding both never
// widens the box to a SecondaryMarker position.
func ScanMarkers(g models.Grid) (models.BoundingBox, bool) {
	var box models.BoundingBox
	seen := false

	for rowIdx, row := range g {
		first, last, ok := markerSpan(row)
		if !ok {
			continue
		}

		if !seen {
			box = models.BoundingBox{R1: rowIdx, C1: first, R2: rowIdx, C2: last}
			seen = true
			continue
		}

		box.R2 = rowIdx
		if first < box.C1 {
			box.C1 = first
		}
		if last > box.C2 {
			box.C2 = last
		}
	}

	return box, seen
}

// markerSpan returns the first and last column of the symbol that
// drives the row's column bounds.
func markerSpan(row models.Row) (first, last int, ok bool) {
	if i := slices.Index(row, PrimaryMarker); i >= 0 {
		return i, lastIndex(row, PrimaryMarker), true
	}
	if i := slices.Index(row, SecondaryMarker); i >= 0 {
		return i, lastIndex(row, SecondaryMarker), true
	}
	return 0, 0, false
}

func lastIndex(row models.Row, symbol rune) int {
	for i := len(row) - 1; i >= 0; i-- {
		if row[i] == symbol {
			return i
		}
	}
	return -1
}
