package tables

import (
	"errors"
	"fmt"
	"os"

	"github.com/BartekS5/sde2csv/internal/etl"
	"github.com/BartekS5/sde2csv/pkg/logger"
	"github.com/BartekS5/sde2csv/pkg/utils"
)

var ErrSourceNotFound = errors.New("SDE path does not exist")

// Options selects what Convert runs and where it writes.
type Options struct {
	Source    etl.Source
	OutputDir string
	// Only restricts the run to these tables, in the given order. Empty runs
	// the whole registry.
	Only  []string
	Quiet bool
	Lang  string
	// ExtraSinks receive every table after its CSV file is written.
	ExtraSinks []etl.Sink
	DryRun     bool
}

// OpenDir returns a JSONL source over dir, failing when dir does not exist.
func OpenDir(dir string) (*etl.JSONLSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, dir)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSourceNotFound, dir)
	}
	return etl.NewJSONLSource(dir), nil
}

// Convert runs the selected converters one after another.
func Convert(opts Options) error {
	if opts.Source == nil {
		return errors.New("no record source configured")
	}
	names := opts.Only
	if len(names) == 0 {
		names = Names()
	}
	if err := etl.NewValidator(Names()).ValidateNames(names); err != nil {
		return err
	}

	lang := opts.Lang
	if lang == "" {
		lang = utils.DefaultLanguage
	}
	outDir := opts.OutputDir
	if outDir == "" {
		outDir = "csv"
	}

	if opts.Quiet {
		prev := logger.Quiet()
		logger.SetQuiet(true)
		defer logger.SetQuiet(prev)
	}

	steps := make([]etl.Step, 0, len(names))
	for _, name := range names {
		factory, _ := FactoryFor(name)
		steps = append(steps, etl.StepFunc{
			StepName: name,
			Fn: func() error {
				csvSink, err := etl.NewCSVSink(outDir)
				if err != nil {
					return err
				}
				sink := append(etl.MultiSink{csvSink}, opts.ExtraSinks...)
				return factory(Env{Source: opts.Source, Sink: sink, Lang: lang}).Convert()
			},
		})
	}

	return etl.NewPipeline(steps, opts.DryRun).Run()
}

// ConvertAll converts every registered table from the JSONL files in sdeDir.
func ConvertAll(sdeDir, outDir string, quiet bool) error {
	src, err := OpenDir(sdeDir)
	if err != nil {
		return err
	}
	return Convert(Options{Source: src, OutputDir: outDir, Quiet: quiet})
}
