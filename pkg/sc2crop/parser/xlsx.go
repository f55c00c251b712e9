package parser

import (
	"unicode/utf8"

	"github.com/ukaji3/sc2crop-go/pkg/sc2crop/models"
	"github.com/xuri/excelize/v2"
)

// EmptyCell is the symbol used for blank spreadsheet cells.
const EmptyCell = ' '

// ExtractGrid builds a grid from a sheet where each cell holds one map symbol.
// Only the first rune of a cell is kept. Blank cells become EmptyCell;
// trailing blanks are not materialised, so rows stay ragged.
func ExtractGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, 0, len(rows))
	for _, row := range rows {
		cells := make(models.Row, len(row))
		for colIdx, cellValue := range row {
			cells[colIdx] = cellSymbol(cellValue)
		}
		grid = append(grid, cells)
	}

	return grid, nil
}

// cellSymbol returns the first rune of a cell value, or EmptyCell.
func cellSymbol(s string) rune {
	if s == "" {
		return EmptyCell
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
