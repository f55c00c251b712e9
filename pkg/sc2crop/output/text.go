// Package output provides serialization of cropped regions.
package output

import (
	"bufio"
	"io"

	"github.com/ukaji3/sc2crop-go/pkg/sc2crop/models"
)

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteRegion writes the rendered lines of a region.
func WriteRegion(w io.Writer, region *models.Region) error {
	return WriteLines(w, region.Lines)
}
