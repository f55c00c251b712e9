// Package sc2crop crops SC2 map dumps down to the region around their markers.
package sc2crop

import (
	"fmt"

	"github.com/ukaji3/sc2crop-go/pkg/sc2crop/parser"
	"go.uber.org/zap"
)

// Options configures cropping behavior.
type Options struct {
	// Bounds decides how cells outside the grid are handled.
	Bounds parser.BoundsPolicy
	// Pad is the symbol rendered for out-of-range cells under BoundsPad.
	Pad rune
	// Sheet selects the sheet for spreadsheet input.
	// If empty, the first sheet is used.
	Sheet string
	// Logger receives debug output. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default cropping options.
func DefaultOptions() Options {
	return Options{
		Bounds: parser.BoundsPad,
		Pad:    ' ',
	}
}

// Validate checks that the options describe a usable configuration.
func (o Options) Validate() error {
	switch o.Bounds {
	case parser.BoundsPad, parser.BoundsStrict:
	default:
		return fmt.Errorf("%w: unknown bounds policy %q", ErrInvalidOptions, o.Bounds)
	}
	if o.Bounds == parser.BoundsPad && o.Pad == 0 {
		return fmt.Errorf("%w: pad symbol is not set", ErrInvalidOptions)
	}
	return nil
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
