package cli

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/BartekS5/sde2csv/internal/config"
	"github.com/BartekS5/sde2csv/internal/etl"
	"github.com/BartekS5/sde2csv/internal/tables"
	"github.com/BartekS5/sde2csv/pkg/database"
	"github.com/BartekS5/sde2csv/pkg/logger"
	"github.com/spf13/cobra"
)

func runConvert(cmd *cobra.Command, opts *ConvertOptions, args []string) error {
	logger.SetQuiet(opts.Quiet)
	cfg := config.LoadConfig()
	if cmd.Flags().Changed("lang") {
		cfg.Language = opts.Lang
	}
	if cmd.Flags().Changed("sql-driver") {
		cfg.SQLDriver = opts.SQLDriver
	}
	if cmd.Flags().Changed("sql-dsn") {
		cfg.SQLConnString = opts.SQLDSN
	}

	if cfg.LogFile != "" {
		if err := logger.InitLogger(cfg.LogFile); err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logger.Close()
	}

	input, outDir, err := splitArgs(args, opts, cmd.Flags().Changed("only"))
	if err != nil {
		return err
	}

	// Reject bad table names before touching any database
	if err := etl.NewValidator(tables.Names()).ValidateNames(opts.Only); err != nil {
		return err
	}

	source, closeSource, err := openSource(input)
	if err != nil {
		return err
	}
	defer closeSource()

	var extra []etl.Sink
	if cfg.SQLDriver != "" {
		if err := cfg.RequireSQL(); err != nil {
			return err
		}
		db, err := database.ConnectSQL(cfg.SQLDriver, cfg.SQLConnString)
		if err != nil {
			return err
		}
		defer db.Close()

		sink, err := etl.NewSQLSink(db, cfg.SQLDriver)
		if err != nil {
			return err
		}
		extra = append(extra, sink)
	}

	return tables.Convert(tables.Options{
		Source:     source,
		OutputDir:  outDir,
		Only:       opts.Only,
		Quiet:      opts.Quiet,
		Lang:       cfg.Language,
		ExtraSinks: extra,
		DryRun:     opts.DryRun,
	})
}

// splitArgs returns the input and output paths. With --only set, positional
// words that name a table are appended to opts.Only instead, since
// "--only a b" leaves b among the positionals.
func splitArgs(args []string, opts *ConvertOptions, onlySet bool) (string, string, error) {
	input, outDir := args[0], ""
	known := tables.Names()
	for _, arg := range args[1:] {
		if onlySet && slices.Contains(known, arg) {
			opts.Only = append(opts.Only, arg)
			continue
		}
		if outDir != "" {
			return "", "", fmt.Errorf("unexpected argument %q: output path already set to %q", arg, outDir)
		}
		outDir = arg
	}
	if outDir == "" {
		outDir = "csv"
	}
	return input, outDir, nil
}

// openSource picks the record source for the input argument: a MongoDB URI
// or a directory of JSONL files.
func openSource(input string) (etl.Source, func(), error) {
	if !isMongoURI(input) {
		src, err := tables.OpenDir(input)
		if err != nil {
			return nil, nil, err
		}
		return src, func() {}, nil
	}

	dbName, err := mongoDatabase(input)
	if err != nil {
		return nil, nil, err
	}
	client, err := database.ConnectMongo(input)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := database.DisconnectMongo(client); err != nil {
			logger.Errorf("MongoDB disconnect: %v", err)
		}
	}
	return etl.NewMongoSource(client, dbName), closeFn, nil
}

func isMongoURI(s string) bool {
	return strings.HasPrefix(s, "mongodb://") || strings.HasPrefix(s, "mongodb+srv://")
}

// mongoDatabase extracts the database name from the URI path.
func mongoDatabase(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	name := strings.Trim(u.Path, "/")
	if name == "" {
		return "", fmt.Errorf("MongoDB URI %q does not name a database", uri)
	}
	return name, nil
}
