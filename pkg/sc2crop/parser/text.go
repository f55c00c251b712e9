// Package parser provides grid loading, marker scanning and slicing.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/sc2crop-go/pkg/sc2crop/models"
)

// ErrInvalidEncoding indicates a map line that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8 in map")

// LoadText reads a map dump with one row per line.
// Line terminators (\n or \r\n) are stripped; a final line without a
// terminator is still a row. Lines must be valid UTF-8.
func LoadText(r io.Reader) (models.Grid, error) {
	br := bufio.NewReader(r)

	var grid models.Grid
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if !utf8.ValidString(line) {
				return nil, fmt.Errorf("map line %d: %w", len(grid)+1, ErrInvalidEncoding)
			}
			grid = append(grid, models.Row(chomp(line)))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read map line %d: %w", len(grid)+1, err)
		}
	}

	return grid, nil
}

// chomp removes one trailing line terminator.
func chomp(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
