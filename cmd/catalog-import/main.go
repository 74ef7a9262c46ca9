// Command catalog-import reconciles a CSV or XLSX spreadsheet against the
// catalog with one of the registered importers.
//
//	catalog-import list
//	catalog-import [--config path] run <importer> <file> [--dry-run] [--json] [--verbose]
//
// Exit codes: 0 = run completed (skipped rows included), 1 = error.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/adaptation-catalog/internal/adapter/postgres"
	"github.com/heartmarshall/adaptation-catalog/internal/app"
	"github.com/heartmarshall/adaptation-catalog/internal/blob"
	"github.com/heartmarshall/adaptation-catalog/internal/config"
	"github.com/heartmarshall/adaptation-catalog/internal/importer"
	"github.com/heartmarshall/adaptation-catalog/internal/observability"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "catalog-import",
		Short:        "Import catalog spreadsheets",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $CONFIG_PATH or ./config.yaml)")
	root.AddCommand(newListCmd(), newRunCmd(&configPath))
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List importers and their required columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Importer names and columns do not depend on the catalog behind them.
			runner := importer.NewRunner(slog.New(slog.DiscardHandler), clockwork.NewRealClock(),
				observability.NewMetrics(), config.ImportConfig{},
				importer.Importers(importer.Catalog{})...)
			return printImporters(cmd.OutOrStdout(), runner)
		},
	}
}

type runOptions struct {
	configPath string
	dryRun     bool
	asJSON     bool
	verbose    bool
}

func newRunCmd(configPath *string) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run <importer> <file>",
		Short: "Run an importer on a CSV or XLSX file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath = *configPath
			return runImport(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Check every row without writing")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print the outcome of every row")

	return cmd
}

func runImport(ctx context.Context, out io.Writer, name, path string, opts runOptions) error {
	if opts.configPath == "" {
		opts.configPath = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	blobs, err := blob.Open(ctx, cfg.Blob)
	if err != nil {
		return fmt.Errorf("open blob store: %w", err)
	}

	services := app.NewServices(logger, pool, blobs)
	runner := importer.NewRunner(logger, clockwork.NewRealClock(), observability.NewMetrics(),
		cfg.Import, services.Importers()...)

	runOpts := importer.Options{DryRun: opts.dryRun}
	if opts.verbose {
		runOpts.OnRow = func(res importer.RowResult) { printRow(out, res) }
	}

	report, err := runner.RunFile(ctx, name, path, runOpts)
	if report != nil {
		if perr := printReport(out, report, opts.asJSON); perr != nil {
			return perr
		}
	}
	return err
}

func printImporters(w io.Writer, runner *importer.Runner) error {
	for _, name := range runner.Names() {
		cols, err := runner.Columns(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%-20s %s\n", name, strings.Join(cols, ", ")); err != nil {
			return err
		}
	}
	return nil
}

func printRow(w io.Writer, res importer.RowResult) {
	if res.Reason != "" {
		fmt.Fprintf(w, "row %d: %s: %s\n", res.Line, res.Outcome, res.Reason)
		return
	}
	fmt.Fprintf(w, "row %d: %s\n", res.Line, res.Outcome)
}

func printReport(w io.Writer, report *importer.Report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	for _, warn := range report.Warnings {
		if _, err := fmt.Fprintln(w, "warning:", warn); err != nil {
			return err
		}
	}
	if report.DroppedWarnings > 0 {
		fmt.Fprintf(w, "... %d more warnings\n", report.DroppedWarnings)
	}
	_, err := fmt.Fprintln(w, report)
	return err
}
