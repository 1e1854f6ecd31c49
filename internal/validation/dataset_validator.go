// Package validation re-checks the generated dataset before anything is
// written: referential integrity, posting-date bounds, budget grain
// uniqueness and the budget sign constraint. A failure here is fatal to
// the run and guarantees no output files exist.
package validation

import (
	"log/slog"
	"time"

	"finsynth/internal/errors"
	"finsynth/pkg/contracts/domain"
)

const dateFormat = "2006-01-02"

// DatasetValidator runs the integrity assertions over a complete dataset
type DatasetValidator struct {
	logger *slog.Logger
}

// NewDatasetValidator creates a dataset validator
func NewDatasetValidator(logger *slog.Logger) *DatasetValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &DatasetValidator{logger: logger}
}

// Validate checks every invariant and returns the first violation found.
// start and end bound the permitted posting dates, inclusive.
func (v *DatasetValidator) Validate(ds *domain.Dataset, start, end time.Time) error {
	if err := v.checkReferences(ds); err != nil {
		return err
	}
	if err := v.checkDateBounds(ds, start, end); err != nil {
		return err
	}
	if err := v.checkBudgetGrain(ds); err != nil {
		return err
	}
	if err := v.checkBudgetSigns(ds); err != nil {
		return err
	}

	v.logger.Info("dataset validation passed",
		slog.Int("cost_centers", len(ds.CostCenters)),
		slog.Int("gl_accounts", len(ds.GLAccounts)),
		slog.Int("calendar_days", len(ds.Calendar)),
		slog.Int("budget_cells", len(ds.Budget)),
		slog.Int("actual_postings", len(ds.Actuals)))
	return nil
}

// checkReferences verifies fact cost centers and GL accounts exist in the
// dimension tables.
func (v *DatasetValidator) checkReferences(ds *domain.Dataset) error {
	ccIDs := make(map[string]bool, len(ds.CostCenters))
	for _, cc := range ds.CostCenters {
		ccIDs[cc.ID] = true
	}
	glCodes := make(map[string]bool, len(ds.GLAccounts))
	for _, gl := range ds.GLAccounts {
		glCodes[gl.Account] = true
	}

	for _, cell := range ds.Budget {
		if !ccIDs[cell.CostCenterID] {
			return errors.NewBrokenReference("validate", "finance_budget", "cost_center_id", cell.CostCenterID)
		}
		if !glCodes[cell.GLAccount] {
			return errors.NewBrokenReference("validate", "finance_budget", "gl_account", cell.GLAccount)
		}
	}
	for _, posting := range ds.Actuals {
		if !ccIDs[posting.CostCenterID] {
			return errors.NewBrokenReference("validate", "finance_actuals", "cost_center_id", posting.CostCenterID)
		}
		if !glCodes[posting.GLAccount] {
			return errors.NewBrokenReference("validate", "finance_actuals", "gl_account", posting.GLAccount)
		}
	}
	return nil
}

// checkDateBounds verifies every posting date falls inside [start, end]
func (v *DatasetValidator) checkDateBounds(ds *domain.Dataset, start, end time.Time) error {
	for _, posting := range ds.Actuals {
		if posting.PostingDate.Before(start) || posting.PostingDate.After(end) {
			return errors.NewDateOutOfRange("validate",
				posting.PostingDate.Format(dateFormat),
				start.Format(dateFormat),
				end.Format(dateFormat))
		}
	}
	return nil
}

// checkBudgetGrain re-verifies budget grain uniqueness
func (v *DatasetValidator) checkBudgetGrain(ds *domain.Dataset) error {
	seen := make(map[domain.GrainKey]bool, len(ds.Budget))
	dupes := 0
	for _, cell := range ds.Budget {
		key := cell.GrainKey()
		if seen[key] {
			dupes++
		}
		seen[key] = true
	}
	if dupes > 0 {
		return errors.NewDuplicateGrain("validate", dupes)
	}
	return nil
}

// checkBudgetSigns verifies budget amounts are non-negative. Actual
// postings stay non-negative by construction but are not asserted, leaving
// room for reversal documents later.
func (v *DatasetValidator) checkBudgetSigns(ds *domain.Dataset) error {
	for _, cell := range ds.Budget {
		if cell.Amount < 0 {
			return errors.NewNegativeAmount("validate", cell.Amount)
		}
	}
	return nil
}
