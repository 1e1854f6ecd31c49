// Package dimensions builds the reference tables every fact row keys into:
// cost centers, GL accounts and the fiscal calendar. Builders are pure
// functions of configuration and consume no randomness.
package dimensions

import (
	"fmt"
	"time"

	"finsynth/internal/config"
	"finsynth/pkg/contracts/domain"
)

// BuildCostCenters produces the cost-center dimension: ids CC0001.. with
// names derived from the department catalog, truncated to the configured
// count. The hierarchy is flat, so no parent ids are populated.
func BuildCostCenters(cfg *config.Config) []domain.CostCenter {
	n := cfg.Generation.NumCostCenters
	if n > MaxCostCenters {
		n = MaxCostCenters
	}

	centers := make([]domain.CostCenter, 0, n)
	for i := 0; i < n; i++ {
		centers = append(centers, domain.CostCenter{
			ID:      fmt.Sprintf("CC%04d", i+1),
			Name:    departments[i] + " Cost Center",
			Dept:    departments[i],
			Manager: managers[i],
		})
	}
	return centers
}

// BuildGLAccounts produces the GL account dimension, truncated to the
// configured count.
func BuildGLAccounts(cfg *config.Config) []domain.GLAccount {
	n := cfg.Generation.NumGLAccounts
	if n > MaxGLAccounts {
		n = MaxGLAccounts
	}

	accounts := make([]domain.GLAccount, n)
	copy(accounts, glCatalog[:n])
	return accounts
}

// BuildCalendar produces one CalendarDay per day in the configured range,
// inclusive on both ends. Fiscal year and period follow the calendar.
func BuildCalendar(cfg *config.Config) ([]domain.CalendarDay, error) {
	start, end, err := cfg.Generation.DateRange()
	if err != nil {
		return nil, err
	}

	var days []domain.CalendarDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, domain.CalendarDay{
			Date:         d,
			FiscalYear:   d.Year(),
			FiscalPeriod: int(d.Month()),
			IsMonthEnd:   isMonthEnd(d),
		})
	}
	return days, nil
}

// isMonthEnd reports whether d is the last day of its month
func isMonthEnd(d time.Time) bool {
	return d.AddDate(0, 0, 1).Day() == 1
}

// Month identifies one fiscal month in the generation range
type Month struct {
	FiscalYear   int
	FiscalPeriod int
}

// MonthsInRange lists every (fiscal year, fiscal period) between start and
// end in chronological order. Partial first and last months count in full.
func MonthsInRange(start, end time.Time) []Month {
	var months []Month
	cur := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location())
	for !cur.After(last) {
		months = append(months, Month{FiscalYear: cur.Year(), FiscalPeriod: int(cur.Month())})
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}

// DaysByMonth groups calendar days by their fiscal month, preserving
// chronological order inside each month.
func DaysByMonth(days []domain.CalendarDay) map[Month][]time.Time {
	grouped := make(map[Month][]time.Time)
	for _, day := range days {
		m := Month{FiscalYear: day.FiscalYear, FiscalPeriod: day.FiscalPeriod}
		grouped[m] = append(grouped[m], day.Date)
	}
	return grouped
}
