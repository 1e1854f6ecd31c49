package pipeline

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finsynth/internal/config"
	"finsynth/internal/errors"
	"finsynth/internal/exporter"
)

// runInto executes a full generation run writing into dir
func runInto(t *testing.T, cfg config.Config, dir string) (*Summary, error) {
	t.Helper()
	cfg.Output.Dir = dir
	cfg.Logging.FilePath = filepath.Join(t.TempDir(), "logs", "finsynth.log")
	paths, err := config.NewPaths(&cfg)
	require.NoError(t, err)
	require.NoError(t, paths.EnsureDirectories())
	return New(&cfg, paths, slog.Default()).Run(context.Background())
}

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Generation.StartDate = "2024-01-01"
	cfg.Generation.EndDate = "2024-03-31"
	cfg.Generation.NumCostCenters = 4
	cfg.Generation.NumGLAccounts = 6
	return cfg
}

func TestRunProducesAllTables(t *testing.T) {
	dir := t.TempDir()
	summary, err := runInto(t, smallConfig(), dir)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.CostCenterRows)
	assert.Equal(t, 6, summary.GLAccountRows)
	assert.Equal(t, 91, summary.CalendarRows) // Jan+Feb+Mar 2024, leap year
	assert.Greater(t, summary.BudgetRows, 0)
	assert.GreaterOrEqual(t, summary.ActualRows, summary.BudgetRows)
	assert.False(t, summary.FirstPosting.IsZero())
	assert.False(t, summary.LastPosting.Before(summary.FirstPosting))

	for _, name := range []string{
		exporter.TableCostCenters, exporter.TableGLAccounts, exporter.TableFiscalCalendar,
		exporter.TableBudget, exporter.TableActuals,
	} {
		_, err := os.Stat(filepath.Join(dir, name+".csv"))
		assert.NoError(t, err, "missing table file %s.csv", name)
	}
}

func TestRunIsReproducible(t *testing.T) {
	// The determinism law: identical configuration and seed produce
	// byte-identical output files.
	dirA := t.TempDir()
	dirB := t.TempDir()

	_, err := runInto(t, smallConfig(), dirA)
	require.NoError(t, err)
	_, err = runInto(t, smallConfig(), dirB)
	require.NoError(t, err)

	entries, err := os.ReadDir(dirA)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		a, err := os.ReadFile(filepath.Join(dirA, entry.Name()))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, entry.Name()))
		require.NoError(t, err)
		assert.Equal(t, a, b, "file %s differs between identical runs", entry.Name())
	}
}

func TestRunDifferentSeedsDiffer(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	cfgB := smallConfig()
	cfgB.Generation.Seed = 7

	_, err := runInto(t, smallConfig(), dirA)
	require.NoError(t, err)
	_, err = runInto(t, cfgB, dirB)
	require.NoError(t, err)

	a, err := os.ReadFile(filepath.Join(dirA, exporter.TableBudget+".csv"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dirB, exporter.TableBudget+".csv"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRunSingleCell(t *testing.T) {
	cfg := config.Default()
	cfg.Generation.StartDate = "2024-01-01"
	cfg.Generation.EndDate = "2024-01-31"
	cfg.Generation.NumCostCenters = 1
	cfg.Generation.NumGLAccounts = 1
	cfg.Budget.SparseGLProbability = 0

	summary, err := runInto(t, cfg, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.BudgetRows)
	assert.GreaterOrEqual(t, summary.ActualRows, 1)
	assert.LessOrEqual(t, summary.ActualRows, cfg.Actuals.MaxPostingsPerMonth)
	assert.Equal(t, 31, summary.CalendarRows)
}

func TestRunWorkbook(t *testing.T) {
	dir := t.TempDir()
	cfg := smallConfig()
	cfg.Output.Workbook = true

	summary, err := runInto(t, cfg, dir)
	require.NoError(t, err)
	assert.True(t, summary.WorkbookWritten)

	_, err = os.Stat(filepath.Join(dir, cfg.Output.WorkbookFile))
	assert.NoError(t, err)
}

func TestRunFailsBeforeWriting(t *testing.T) {
	// A failing stage must leave the output directory empty. The bad date
	// bypasses config.Load validation on purpose to hit the stage path.
	dir := t.TempDir()
	cfg := smallConfig()
	cfg.Generation.StartDate = "not-a-date"

	_, err := runInto(t, cfg, dir)
	require.Error(t, err)

	var genErr *errors.GenError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, errors.KindExecution, genErr.Kind)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no files may exist after a failed run")
}

func TestBuildValidatesDataset(t *testing.T) {
	cfg := smallConfig()
	paths, err := config.NewPaths(&cfg)
	require.NoError(t, err)

	ds, err := New(&cfg, paths, slog.Default()).Build(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.CostCenters, 4)
	assert.Len(t, ds.GLAccounts, 6)
	assert.NotEmpty(t, ds.Budget)
	assert.NotEmpty(t, ds.Actuals)
}

func TestSummaryPrint(t *testing.T) {
	summary, err := runInto(t, smallConfig(), t.TempDir())
	require.NoError(t, err)

	var buf bytes.Buffer
	summary.Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "Generated datasets:")
	assert.Contains(t, out, "finance_budget.csv")
	assert.Contains(t, out, "Date range:")
}
