package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sc2crop-go/pkg/sc2crop/models"
)

// BoundsPolicy decides what happens when a slice reaches outside the grid.
type BoundsPolicy string

const (
	// BoundsPad renders out-of-range cells with the pad rune.
	BoundsPad BoundsPolicy = "pad"
	// BoundsStrict fails on the first out-of-range cell.
	BoundsStrict BoundsPolicy = "strict"
)

// OutOfRangeError reports a cell outside the grid under BoundsStrict.
type OutOfRangeError struct {
	Row int
	Col int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("cell (%d, %d) is outside the grid", e.Row, e.Col)
}

// SliceRegion renders area of g as one string per row.
// Rows run from area.R1 to area.R2 and columns from area.C1 to area.C2,
// both inclusive.
func SliceRegion(g models.Grid, area models.BoundingBox, policy BoundsPolicy, pad rune) ([]string, error) {
	if area.Height() <= 0 || area.Width() <= 0 {
		return nil, nil
	}

	lines := make([]string, 0, area.Height())
	var sb strings.Builder
	for x := area.R1; x <= area.R2; x++ {
		sb.Reset()
		for y := area.C1; y <= area.C2; y++ {
			symbol, ok := g.Cell(x, y)
			if !ok {
				if policy == BoundsStrict {
					return nil, &OutOfRangeError{Row: x, Col: y}
				}
				symbol = pad
			}
			sb.WriteRune(symbol)
		}
		lines = append(lines, sb.String())
	}

	return lines, nil
}
