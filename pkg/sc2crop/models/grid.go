// Package models defines data structures for map cropping.
package models

// Row is a single line of map symbols, one rune per column.
type Row []rune

// Grid is a ragged map: rows are not required to share a length.
type Grid []Row

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// MaxWidth returns the length of the longest row.
func (g Grid) MaxWidth() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Cell returns the symbol at (r, c) and whether that position exists.
// Negative indices, rows past the end and columns past the row's
// length all report false.
func (g Grid) Cell(r, c int) (rune, bool) {
	if r < 0 || r >= len(g) {
		return 0, false
	}
	row := g[r]
	if c < 0 || c >= len(row) {
		return 0, false
	}
	return row[c], true
}
