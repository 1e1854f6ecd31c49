package exporter

import (
	"fmt"
	"log/slog"
	"strconv"

	"finsynth/pkg/contracts/domain"
)

const dateFormat = "2006-01-02"

// Table file names, without the .csv suffix
const (
	TableCostCenters    = "cost_centers"
	TableGLAccounts     = "gl_accounts"
	TableFiscalCalendar = "fiscal_calendar"
	TableBudget         = "finance_budget"
	TableActuals        = "finance_actuals"
)

// TableExporter writes the five dataset tables to CSV files in the output
// directory, one file per table.
type TableExporter struct {
	writer *CSVWriter
	logger *slog.Logger
}

// NewTableExporter creates a table exporter on top of a CSV writer
func NewTableExporter(writer *CSVWriter, logger *slog.Logger) *TableExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &TableExporter{writer: writer, logger: logger}
}

// ExportDataset writes every table of the dataset. Files are written in a
// fixed order; a failure leaves earlier files behind, which is acceptable
// for a one-shot generator.
func (e *TableExporter) ExportDataset(ds *domain.Dataset) error {
	tables := []struct {
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

	for _, table := range tables {
		if err := e.writer.WriteSimpleCSV(table.name+".csv", table.headers, table.records); err != nil {
			return fmt.Errorf("failed to export %s: %w", table.name, err)
		}
		e.logger.Info("table exported",
			slog.String("table", table.name),
			slog.Int("rows", len(table.records)))
	}
	return nil
}

var costCenterHeaders = []string{
	"cost_center_id", "cost_center_name", "department", "manager", "parent_cost_center_id",
}

// CostCenterRecords maps cost centers onto CSV records
func CostCenterRecords(centers []domain.CostCenter) [][]string {
	records := make([][]string, 0, len(centers))
	for _, cc := range centers {
		records = append(records, []string{cc.ID, cc.Name, cc.Dept, cc.Manager, cc.ParentID})
	}
	return records
}

var glAccountHeaders = []string{"gl_account", "gl_name", "account_type", "gl_group"}

// GLAccountRecords maps GL accounts onto CSV records
func GLAccountRecords(accounts []domain.GLAccount) [][]string {
	records := make([][]string, 0, len(accounts))
	for _, gl := range accounts {
		records = append(records, []string{gl.Account, gl.Name, string(gl.Type), gl.Group})
	}
	return records
}

var calendarHeaders = []string{"calendar_date", "fiscal_year", "fiscal_period", "is_month_end"}

// CalendarRecords maps calendar days onto CSV records
func CalendarRecords(days []domain.CalendarDay) [][]string {
	records := make([][]string, 0, len(days))
	for _, day := range days {
		records = append(records, []string{
			day.Date.Format(dateFormat),
			strconv.Itoa(day.FiscalYear),
			strconv.Itoa(day.FiscalPeriod),
			strconv.FormatBool(day.IsMonthEnd),
		})
	}
	return records
}

var budgetHeaders = []string{"fiscal_year", "fiscal_period", "gl_account", "cost_center_id", "budget_amount"}

// BudgetRecords maps budget cells onto CSV records
func BudgetRecords(cells []domain.BudgetCell) [][]string {
	records := make([][]string, 0, len(cells))
	for _, cell := range cells {
		records = append(records, []string{
			strconv.Itoa(cell.FiscalYear),
			strconv.Itoa(cell.FiscalPeriod),
			cell.GLAccount,
			cell.CostCenterID,
			formatAmount(cell.Amount),
		})
	}
	return records
}

var actualsHeaders = []string{
	"posting_date", "fiscal_year", "fiscal_period", "gl_account", "cost_center_id", "actual_amount", "document_type",
}

// ActualsRecords maps actual postings onto CSV records
func ActualsRecords(postings []domain.ActualPosting) [][]string {
	records := make([][]string, 0, len(postings))
	for _, posting := range postings {
		records = append(records, []string{
			posting.PostingDate.Format(dateFormat),
			strconv.Itoa(posting.FiscalYear),
			strconv.Itoa(posting.FiscalPeriod),
			posting.GLAccount,
			posting.CostCenterID,
			formatAmount(posting.Amount),
			string(posting.DocumentType),
		})
	}
	return records
}

// formatAmount renders an amount with the two decimal places the tables carry
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
