package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finsynth/pkg/contracts/domain"
)

func sampleDataset(t *testing.T) *domain.Dataset {
	t.Helper()
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}
	return &domain.Dataset{
		CostCenters: []domain.CostCenter{
			{ID: "CC0001", Name: "FP&A Cost Center", Dept: "FP&A", Manager: "A. Patel"},
		},
		GLAccounts: []domain.GLAccount{
			{Account: "600000", Name: "Salaries & Wages", Type: domain.AccountTypeOPEX, Group: "Payroll"},
		},
		Calendar: []domain.CalendarDay{
			{Date: day("2024-01-31"), FiscalYear: 2024, FiscalPeriod: 1, IsMonthEnd: true},
		},
		Budget: []domain.BudgetCell{
			{FiscalYear: 2024, FiscalPeriod: 1, GLAccount: "600000", CostCenterID: "CC0001", Amount: 2500.5},
		},
		Actuals: []domain.ActualPosting{
			{PostingDate: day("2024-01-15"), FiscalYear: 2024, FiscalPeriod: 1, GLAccount: "600000", CostCenterID: "CC0001", Amount: 1200, DocumentType: domain.DocumentTypeVendorInvoice},
		},
	}
}

func TestRecordMappings(t *testing.T) {
	ds := sampleDataset(t)

	t.Run("cost centers", func(t *testing.T) {
		records := CostCenterRecords(ds.CostCenters)
		require.Len(t, records, 1)
		assert.Equal(t, []string{"CC0001", "FP&A Cost Center", "FP&A", "A. Patel", ""}, records[0])
	})

	t.Run("gl accounts", func(t *testing.T) {
		records := GLAccountRecords(ds.GLAccounts)
		require.Len(t, records, 1)
		assert.Equal(t, []string{"600000", "Salaries & Wages", "OPEX", "Payroll"}, records[0])
	})

	t.Run("calendar", func(t *testing.T) {
		records := CalendarRecords(ds.Calendar)
		require.Len(t, records, 1)
		assert.Equal(t, []string{"2024-01-31", "2024", "1", "true"}, records[0])
	})

	t.Run("budget", func(t *testing.T) {
		records := BudgetRecords(ds.Budget)
		require.Len(t, records, 1)
		assert.Equal(t, []string{"2024", "1", "600000", "CC0001", "2500.50"}, records[0])
	})

	t.Run("actuals", func(t *testing.T) {
		records := ActualsRecords(ds.Actuals)
		require.Len(t, records, 1)
		assert.Equal(t, []string{"2024-01-15", "2024", "1", "600000", "CC0001", "1200.00", "KR"}, records[0])
	})
}

func TestTableExporter_ExportDataset(t *testing.T) {
	writer, tempDir := setupTestEnv(t)
	e := NewTableExporter(writer, nil)

	require.NoError(t, e.ExportDataset(sampleDataset(t)))

	wantFiles := []string{
		"cost_centers.csv",
		"gl_accounts.csv",
		"fiscal_calendar.csv",
		"finance_budget.csv",
		"finance_actuals.csv",
	}
	for _, name := range wantFiles {
		path := filepath.Join(tempDir, name)
		file, err := os.Open(path)
		require.NoError(t, err, "expected %s to exist", name)

		rows, err := csv.NewReader(file).ReadAll()
		file.Close()
		require.NoError(t, err)
		assert.Len(t, rows, 2, "%s should contain header plus one row", name)
	}
}

func TestTableExporter_BudgetColumns(t *testing.T) {
	writer, tempDir := setupTestEnv(t)
	require.NoError(t, NewTableExporter(writer, nil).ExportDataset(sampleDataset(t)))

	file, err := os.Open(filepath.Join(tempDir, "finance_budget.csv"))
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"fiscal_year", "fiscal_period", "gl_account", "cost_center_id", "budget_amount"}, rows[0])
}
