package exporter

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"finsynth/internal/config"
	"finsynth/pkg/contracts/domain"
)

// WorkbookExporter writes the dataset as a single Excel workbook with one
// sheet per table, for handing the demo data to spreadsheet users.
type WorkbookExporter struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewWorkbookExporter creates a workbook exporter
func NewWorkbookExporter(paths *config.Paths, logger *slog.Logger) *WorkbookExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookExporter{paths: paths, logger: logger}
}

// ExportDataset writes all five tables into the named workbook file inside
// the output directory.
func (e *WorkbookExporter) ExportDataset(ds *domain.Dataset, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name    string
		headers []string
		records [][]string
	}{
		{TableCostCenters, costCenterHeaders, CostCenterRecords(ds.CostCenters)},
		{TableGLAccounts, glAccountHeaders, GLAccountRecords(ds.GLAccounts)},
		{TableFiscalCalendar, calendarHeaders, CalendarRecords(ds.Calendar)},
		{TableBudget, budgetHeaders, BudgetRecords(ds.Budget)},
		{TableActuals, actualsHeaders, ActualsRecords(ds.Actuals)},
	}

	for _, sheet := range sheets {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet.name, err)
		}
		if err := writeSheetRow(f, sheet.name, 1, sheet.headers); err != nil {
			return err
		}
		for i, record := range sheet.records {
			if err := writeSheetRow(f, sheet.name, i+2, record); err != nil {
				return err
			}
		}
	}

	// The default sheet is replaced by the table sheets
	f.DeleteSheet("Sheet1")

	path := e.paths.GetWorkbookPath(filename)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	e.logger.Info("workbook exported",
		slog.String("path", path),
		slog.Int("sheets", len(sheets)))
	return nil
}

// writeSheetRow writes one row of string cells starting at column A
func writeSheetRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to resolve cell for row %d: %w", row, err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d of sheet %s: %w", row, sheet, err)
	}
	return nil
}
