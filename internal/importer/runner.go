// Package importer reconciles spreadsheets against the catalog. Each row is
// upserted by its own identifier through the catalog services, so imported
// rows keep the keys of the source spreadsheet and a re-run is idempotent.
package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/adaptation-catalog/internal/config"
	"github.com/heartmarshall/adaptation-catalog/internal/domain"
	"github.com/heartmarshall/adaptation-catalog/internal/observability"
)

// ErrUnknownImporter is returned when no importer is registered under a name.
var ErrUnknownImporter = errors.New("unknown importer")

// ErrFileTooLarge is returned for input files over the configured limit.
var ErrFileTooLarge = errors.New("file too large")

// Importer imports one kind of spreadsheet.
type Importer interface {
	Name() string
	// Columns lists the header columns that must be present.
	Columns() []string
	// Import processes one row. With dryRun set nothing is written and a
	// row that passes every check reports OutcomeChecked. Any error skips the row.
	Import(ctx context.Context, row Row, dryRun bool) (Outcome, error)
}

// Options controls a single run.
type Options struct {
	DryRun bool
	// OnRow, when set, is called after every row.
	OnRow func(RowResult)
}

// Runner runs importers and reports their outcome.
type Runner struct {
	importers map[string]Importer
	clock     clockwork.Clock
	metrics   *observability.Metrics
	cfg       config.ImportConfig
	log       *slog.Logger
}

// NewRunner creates a runner for the given importers.
func NewRunner(
	log *slog.Logger,
	clock clockwork.Clock,
	metrics *observability.Metrics,
	cfg config.ImportConfig,
	importers ...Importer,
) *Runner {
	byName := make(map[string]Importer, len(importers))
	for _, imp := range importers {
		byName[imp.Name()] = imp
	}
	return &Runner{
		importers: byName,
		clock:     clock,
		metrics:   metrics,
		cfg:       cfg,
		log:       log.With("component", "importer"),
	}
}

// Names returns the registered importer names, sorted.
func (r *Runner) Names() []string {
	names := make([]string, 0, len(r.importers))
	for name := range r.importers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Columns returns the required columns of the named importer.
func (r *Runner) Columns(name string) ([]string, error) {
	imp, ok := r.importers[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownImporter)
	}
	return imp.Columns(), nil
}

// RunFile reads the spreadsheet at path and runs the named importer on it.
func (r *Runner) RunFile(ctx context.Context, name, path string, opts Options) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return r.RunReader(ctx, name, path, f, opts)
}

// RunReader parses src, named filename for format detection, and runs the
// named importer on it.
func (r *Runner) RunReader(ctx context.Context, name, filename string, src io.Reader, opts Options) (*Report, error) {
	if _, ok := r.importers[name]; !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownImporter)
	}

	if r.cfg.MaxFileBytes > 0 {
		src = io.LimitReader(src, r.cfg.MaxFileBytes+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	if r.cfg.MaxFileBytes > 0 && int64(len(data)) > r.cfg.MaxFileBytes {
		return nil, fmt.Errorf("%s: %w (limit %d bytes)", filename, ErrFileTooLarge, r.cfg.MaxFileBytes)
	}

	sheet, err := Read(bytes.NewReader(data), filename)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx, name, sheet, opts)
}

// Run imports every row of sheet with the named importer. Missing required
// columns fail the whole run before any row is touched; row failures are
// counted as skipped and never abort the run.
func (r *Runner) Run(ctx context.Context, name string, sheet *Sheet, opts Options) (*Report, error) {
	imp, ok := r.importers[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownImporter)
	}

	report := &Report{
		RunID:       uuid.NewString(),
		Importer:    name,
		DryRun:      opts.DryRun,
		maxWarnings: r.cfg.MaxReportedWarnings,
	}
	log := r.log.With(slog.String("importer", name), slog.String("run_id", report.RunID))

	if err := sheet.RequireColumns(imp.Columns()); err != nil {
		r.metrics.ImportRuns.WithLabelValues(name, "failed").Inc()
		log.ErrorContext(ctx, "import rejected", slog.String("error", err.Error()))
		return nil, err
	}

	start := r.clock.Now()
	log.InfoContext(ctx, "import started",
		slog.Int("rows", len(sheet.Rows)),
		slog.Bool("dry_run", opts.DryRun),
	)

	for _, row := range sheet.Rows {
		if err := ctx.Err(); err != nil {
			report.Duration = r.clock.Since(start)
			r.metrics.ImportRuns.WithLabelValues(name, "failed").Inc()
			log.WarnContext(ctx, "import interrupted", slog.String("summary", report.String()))
			return report, err
		}

		res := r.importRow(ctx, imp, row, opts.DryRun)
		report.record(res)
		r.metrics.ImportRows.WithLabelValues(name, string(res.Outcome)).Inc()

		if res.Outcome == OutcomeSkipped {
			log.WarnContext(ctx, "row skipped",
				slog.Int("line", res.Line),
				slog.String("reason", res.Reason),
			)
		} else {
			log.DebugContext(ctx, "row imported",
				slog.Int("line", res.Line),
				slog.String("outcome", string(res.Outcome)),
			)
		}
		if opts.OnRow != nil {
			opts.OnRow(res)
		}
	}

	report.Duration = r.clock.Since(start)
	r.metrics.ImportRunDuration.WithLabelValues(name).Observe(report.Duration.Seconds())
	r.metrics.ImportRuns.WithLabelValues(name, "ok").Inc()

	log.InfoContext(ctx, "import finished",
		slog.Int("rows", report.Rows),
		slog.Int("created", report.Created),
		slog.Int("updated", report.Updated),
		slog.Int("skipped", report.Skipped),
		slog.Duration("duration", report.Duration),
	)
	return report, nil
}

func (r *Runner) importRow(ctx context.Context, imp Importer, row Row, dryRun bool) RowResult {
	outcome, err := imp.Import(ctx, row, dryRun)
	if err != nil {
		return RowResult{Line: row.Line, Outcome: OutcomeSkipped, Reason: reason(err)}
	}
	return RowResult{Line: row.Line, Outcome: outcome}
}

// reason renders a row error for the report, listing every field error.
func reason(err error) string {
	fields := domain.FieldErrors(err)
	if len(fields) < 2 {
		return err.Error()
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation: " + strings.Join(parts, "; ")
}
