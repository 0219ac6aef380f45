// Package cli handles the command-line interface logic
// using the Cobra library.
package cli

import (
	"fmt"
	"strings"

	"github.com/BartekS5/sde2csv/internal/tables"
	"github.com/spf13/cobra"
)

// ConvertOptions collects the flags of the root command.
type ConvertOptions struct {
	Only      []string
	Quiet     bool
	Lang      string
	SQLDriver string
	SQLDSN    string
	DryRun    bool
}

func NewRootCmd() *cobra.Command {
	opts := &ConvertOptions{}

	rootCmd := &cobra.Command{
		Use:   "sde2csv <sde_path> [output_path]",
		Short: "Convert EVE Online SDE JSON Lines to CSV",
		Long: `sde2csv converts the JSON Lines static data export into the legacy
CSV tables (invTypes, invNames, industryActivity, ...).

sde_path is a directory of .jsonl files, or a mongodb:// URI naming a database
whose collections hold the same records. output_path defaults to "csv".

--only accepts table names separated by commas or spaces:
  sde2csv sde --only invTypes invGroups`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringSliceVar(&opts.Only, "only", nil,
		"Only convert these tables ("+strings.Join(tables.Names(), ", ")+")")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress output messages")
	flags.StringVar(&opts.Lang, "lang", "", "Language of localized fields (default from SDE_LANGUAGE, else en)")
	flags.StringVar(&opts.SQLDriver, "sql-driver", "", "Also load tables into a database: sqlserver, postgres, mysql or sqlite")
	flags.StringVar(&opts.SQLDSN, "sql-dsn", "", "Database connection string (default from SQL_CONNECTION_STRING)")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "List the tables that would be converted without writing")

	rootCmd.AddCommand(newTablesCmd())

	return rootCmd
}

func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the tables that can be converted",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range tables.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
