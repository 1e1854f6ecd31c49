// Package pipeline runs the generation stages in their fixed order:
// dimensions, budget, actuals, validation, export. Every stage completes
// before the next starts; validation failing means nothing is written.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"finsynth/internal/config"
	"finsynth/internal/dimensions"
	"finsynth/internal/errors"
	"finsynth/internal/exporter"
	"finsynth/internal/synth"
	"finsynth/internal/validation"
	"finsynth/pkg/contracts/domain"
)

// Summary reports what one run produced
type Summary struct {
	OutDir          string
	CostCenterRows  int
	GLAccountRows   int
	CalendarRows    int
	BudgetRows      int
	ActualRows      int
	FirstPosting    time.Time
	LastPosting     time.Time
	Elapsed         time.Duration
	WorkbookWritten bool
}

// Print writes the human-readable run summary
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintln(w, "Generated datasets:")
	fmt.Fprintf(w, "- %s/%s.csv (%d rows)\n", s.OutDir, exporter.TableCostCenters, s.CostCenterRows)
	fmt.Fprintf(w, "- %s/%s.csv (%d rows)\n", s.OutDir, exporter.TableGLAccounts, s.GLAccountRows)
	fmt.Fprintf(w, "- %s/%s.csv (%d rows)\n", s.OutDir, exporter.TableFiscalCalendar, s.CalendarRows)
	fmt.Fprintf(w, "- %s/%s.csv (%d rows)\n", s.OutDir, exporter.TableBudget, s.BudgetRows)
	fmt.Fprintf(w, "- %s/%s.csv (%d rows)\n", s.OutDir, exporter.TableActuals, s.ActualRows)
	if s.WorkbookWritten {
		fmt.Fprintf(w, "- %s workbook written\n", s.OutDir)
	}
	if !s.FirstPosting.IsZero() {
		fmt.Fprintf(w, "Date range: %s -> %s\n",
			s.FirstPosting.Format("2006-01-02"), s.LastPosting.Format("2006-01-02"))
	}
	fmt.Fprintf(w, "Completed in %s\n", s.Elapsed.Round(time.Millisecond))
}

// Generator wires the stages for one run
type Generator struct {
	cfg    *config.Config
	paths  *config.Paths
	logger *slog.Logger
}

// New creates a generator for the given configuration
func New(cfg *config.Config, paths *config.Paths, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{cfg: cfg, paths: paths, logger: logger}
}

// Build generates and validates the dataset without writing anything.
func (g *Generator) Build(ctx context.Context) (*domain.Dataset, error) {
	sampler := synth.NewSampler(g.cfg.Generation.Seed)

	g.logger.InfoContext(ctx, "building dimensions",
		slog.Int("num_cost_centers", g.cfg.Generation.NumCostCenters),
		slog.Int("num_gl_accounts", g.cfg.Generation.NumGLAccounts))
	ds := &domain.Dataset{
		CostCenters: dimensions.BuildCostCenters(g.cfg),
		GLAccounts:  dimensions.BuildGLAccounts(g.cfg),
	}
	calendar, err := dimensions.BuildCalendar(g.cfg)
	if err != nil {
		return nil, errors.NewExecution("dimensions", err)
	}
	ds.Calendar = calendar

	budget, err := synth.NewBudgetSynthesizer(g.cfg, sampler, g.logger).
		Generate(ds.CostCenters, ds.GLAccounts)
	if err != nil {
		return nil, err
	}
	ds.Budget = budget

	actuals, err := synth.NewActualsSynthesizer(g.cfg, sampler, g.logger).
		Generate(ds.Budget, ds.GLAccounts, ds.Calendar)
	if err != nil {
		return nil, err
	}
	ds.Actuals = actuals

	start, end, err := g.cfg.Generation.DateRange()
	if err != nil {
		return nil, errors.NewExecution("validate", err)
	}
	if err := validation.NewDatasetValidator(g.logger).Validate(ds, start, end); err != nil {
		return nil, err
	}
	return ds, nil
}

// Run generates, validates and exports the dataset, returning the summary.
func (g *Generator) Run(ctx context.Context) (*Summary, error) {
	started := time.Now()

	ds, err := g.Build(ctx)
	if err != nil {
		return nil, err
	}

	writer := exporter.NewCSVWriter(g.paths)
	if err := exporter.NewTableExporter(writer, g.logger).ExportDataset(ds); err != nil {
		return nil, errors.NewExecution("export", err)
	}
	if g.cfg.Output.Workbook {
		wb := exporter.NewWorkbookExporter(g.paths, g.logger)
		if err := wb.ExportDataset(ds, g.cfg.Output.WorkbookFile); err != nil {
			return nil, errors.NewExecution("export", err)
		}
	}

	summary := &Summary{
		OutDir:          g.paths.OutDir,
		CostCenterRows:  len(ds.CostCenters),
		GLAccountRows:   len(ds.GLAccounts),
		CalendarRows:    len(ds.Calendar),
		BudgetRows:      len(ds.Budget),
		ActualRows:      len(ds.Actuals),
		Elapsed:         time.Since(started),
		WorkbookWritten: g.cfg.Output.Workbook,
	}
	for _, posting := range ds.Actuals {
		if summary.FirstPosting.IsZero() || posting.PostingDate.Before(summary.FirstPosting) {
			summary.FirstPosting = posting.PostingDate
		}
		if posting.PostingDate.After(summary.LastPosting) {
			summary.LastPosting = posting.PostingDate
		}
	}

	g.logger.InfoContext(ctx, "generation run completed",
		slog.Int("budget_rows", summary.BudgetRows),
		slog.Int("actual_rows", summary.ActualRows),
		slog.String("out_dir", summary.OutDir),
		slog.Duration("elapsed", summary.Elapsed))
	return summary, nil
}
