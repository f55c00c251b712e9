// Package main provides the CLI entry point for sc2crop.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sc2crop-go/pkg/sc2crop"
	"github.com/ukaji3/sc2crop-go/pkg/sc2crop/output"
	"github.com/ukaji3/sc2crop-go/pkg/sc2crop/parser"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	strict  bool
	pad     string
	sheet   string
	verbose bool

	logger *zap.Logger
)

func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sc2crop [SC2map.txt]",
		Short: "Crop an SC2 map dump to the region around its markers",
		Long: `sc2crop reads a map dump (one row of symbols per line), finds the
smallest rectangle holding every '0' and '2' cell, grows it by 3 cells
on each side and prints that part of the map.

Use "-" to read the map from standard input. Files ending in .xlsx or
.xlsm are read as spreadsheets with one symbol per cell.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(verbose)
			return err
		},
		RunE: run,
	}

	rootCmd.Flags().BoolVar(&strict, "strict", false, "Fail when the cropped area reaches outside the map instead of padding")
	rootCmd.Flags().StringVar(&pad, "pad", " ", "Symbol printed for cells outside the map")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "Sheet to read from spreadsheet input (default: first sheet)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	return rootCmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func usage(cmd *cobra.Command) {
	fmt.Fprintf(cmd.OutOrStdout(), "Usage: %s SC2map.txt\n", filepath.Base(os.Args[0]))
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		usage(cmd)
		return nil
	}
	inputPath := args[0]

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	region, err := sc2crop.Crop(inputPath, opts)
	if err != nil {
		return fmt.Errorf("crop failed: %w", err)
	}

	logger.Debug("Writing region",
		zap.String("source", region.Source),
		zap.Int("rows", len(region.Lines)))

	if err := output.WriteRegion(cmd.OutOrStdout(), region); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func buildOptions() (sc2crop.Options, error) {
	opts := sc2crop.DefaultOptions()
	opts.Sheet = sheet
	opts.Logger = logger

	if strict {
		opts.Bounds = parser.BoundsStrict
	}

	if utf8.RuneCountInString(pad) != 1 {
		return opts, fmt.Errorf("%w: --pad must be exactly one character, got %q", sc2crop.ErrInvalidOptions, pad)
	}
	opts.Pad, _ = utf8.DecodeRuneInString(pad)

	return opts, nil
}
