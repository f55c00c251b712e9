package parser

import (
	"fmt"

	"github.com/ukaji3/sc2crop-go/pkg/sc2crop/models"
	"github.com/xuri/excelize/v2"
)

// FormatRange converts a 0-based box to spreadsheet notation like B2:K9.
// Corners that fall before the first row or column are written in
// R1C1 form instead, e.g. R-1C-1:D4.
func FormatRange(b models.BoundingBox) string {
	return fmt.Sprintf("%s:%s", cellName(b.R1, b.C1), cellName(b.R2, b.C2))
}

func cellName(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return fmt.Sprintf("R%dC%d", row+1, col+1)
	}
	return name
}
