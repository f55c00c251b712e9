package sc2crop

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/sc2crop-go/pkg/sc2crop/models"
	"github.com/ukaji3/sc2crop-go/pkg/sc2crop/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// StdinPath is the input name that reads the map from standard input.
const StdinPath = "-"

// stdin is swapped out in tests.
var stdin io.Reader = os.Stdin

// Crop loads the map at path and crops it around its markers.
func Crop(path string, opts Options) (*models.Region, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	grid, err := LoadGrid(path, opts)
	if err != nil {
		return nil, err
	}

	region, err := CropGrid(grid, opts)
	if err != nil {
		return nil, err
	}
	region.Source = path

	return region, nil
}

// CropGrid crops an already loaded grid around its markers.
// It returns ErrNoMarkers when the grid holds no marker symbol.
func CropGrid(grid models.Grid, opts Options) (*models.Region, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger()

	log.Debug("Scanning map",
		zap.Int("rows", grid.Height()),
		zap.Int("max_width", grid.MaxWidth()))

	markers, ok := parser.ScanMarkers(grid)
	if !ok {
		return nil, ErrNoMarkers
	}
	area := markers.Expand(models.Margin)

	log.Debug("Markers located",
		zap.String("markers", parser.FormatRange(markers)),
		zap.String("area", parser.FormatRange(area)),
		zap.String("bounds", string(opts.Bounds)))

	lines, err := parser.SliceRegion(grid, area, opts.Bounds, opts.Pad)
	if err != nil {
		return nil, err
	}

	return &models.Region{
		Markers: markers,
		Area:    area,
		Lines:   lines,
	}, nil
}

// LoadGrid reads a map from path. StdinPath reads standard input,
// .xlsx and .xlsm files are read as spreadsheets and anything else
// is read as text.
func LoadGrid(path string, opts Options) (models.Grid, error) {
	if path == StdinPath {
		grid, err := parser.LoadText(stdin)
		if err != nil {
			return nil, NewLoadError(path, "text", err)
		}
		return grid, nil
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		grid, err := loadWorkbook(path, opts.Sheet)
		if err != nil {
			return nil, NewLoadError(path, "xlsx", err)
		}
		return grid, nil
	default:
		grid, err := loadTextFile(path)
		if err != nil {
			return nil, NewLoadError(path, "text", err)
		}
		return grid, nil
	}
}

func loadTextFile(path string) (models.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parser.LoadText(f)
}

func loadWorkbook(path, sheetName string) (models.Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheetName = sheets[0]
	}

	return parser.ExtractGrid(f, sheetName)
}
