package sc2crop

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sc2crop-go/pkg/sc2crop/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNoMarkers indicates the map holds no marker symbol.
var ErrNoMarkers = errors.New("no marker symbols found")

// ErrInvalidOptions indicates an unusable Options value.
var ErrInvalidOptions = errors.New("invalid options")

// OutOfRangeError is returned when strict slicing reaches outside the grid.
type OutOfRangeError = parser.OutOfRangeError

// LoadError represents a failure to read a map source.
type LoadError struct {
	Source string
	Format string // "text", "xlsx"
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s map %q: %v", e.Format, e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(source, format string, err error) *LoadError {
	return &LoadError{
		Source: source,
		Format: format,
		Err:    err,
	}
}
