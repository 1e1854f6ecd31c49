package synth

import (
	"log/slog"
	"sort"

	"finsynth/internal/config"
	"finsynth/internal/dimensions"
	"finsynth/internal/errors"
	"finsynth/pkg/contracts/domain"
)

// ActualsSynthesizer derives dated postings from the budget table: each
// budget cell gets a perturbed target amount split across a random number
// of postings inside that fiscal month.
type ActualsSynthesizer struct {
	cfg     *config.Config
	sampler *Sampler
	logger  *slog.Logger
}

// NewActualsSynthesizer creates an actuals synthesizer drawing from sampler
func NewActualsSynthesizer(cfg *config.Config, sampler *Sampler, logger *slog.Logger) *ActualsSynthesizer {
	return &ActualsSynthesizer{cfg: cfg, sampler: sampler, logger: logger}
}

// Generate builds the actuals table from the budget. The budget is
// re-grouped to its grain defensively and iterated in sorted key order,
// which keeps the sequence of random draws stable across runs.
func (s *ActualsSynthesizer) Generate(budget []domain.BudgetCell, accounts []domain.GLAccount, calendar []domain.CalendarDay) ([]domain.ActualPosting, error) {
	if len(budget) == 0 {
		return nil, nil
	}

	overSet, underSet := s.pickTrendCohorts(budget)
	cells := groupToGrain(budget)

	glType := make(map[string]domain.AccountType, len(accounts))
	for _, gl := range accounts {
		glType[gl.Account] = gl.Type
	}
	daysByMonth := dimensions.DaysByMonth(calendar)

	var postings []domain.ActualPosting
	spikes := 0
	for _, cell := range cells {
		mult := s.sampler.Normal(1.0, s.cfg.Actuals.NoiseSigma)
		if overSet[cell.CostCenterID] {
			mult += s.cfg.Actuals.OverBudgetBias
		}
		if underSet[cell.CostCenterID] {
			mult -= s.cfg.Actuals.UnderBudgetBias
		}
		if s.sampler.Float64() < s.cfg.Actuals.SpikeProbability {
			mult += s.sampler.Uniform(s.cfg.Actuals.SpikeMin, s.cfg.Actuals.SpikeMax)
			spikes++
		}

		target := cell.Amount * mult
		if target < 0 {
			target = 0
		}

		lambda := s.cfg.Actuals.AvgPostingsOPEX
		if glType[cell.GLAccount] == domain.AccountTypeCAPEX {
			lambda = s.cfg.Actuals.AvgPostingsCAPEX
		}
		n := s.sampler.ClampedPoisson(lambda, 1, s.cfg.Actuals.MaxPostingsPerMonth)

		month := dimensions.Month{FiscalYear: cell.FiscalYear, FiscalPeriod: cell.FiscalPeriod}
		days := daysByMonth[month]
		if len(days) == 0 {
			return nil, &errors.GenError{
				Kind:    errors.KindExecution,
				Stage:   "actuals",
				Message: "no calendar days for budget month",
				Context: map[string]interface{}{"fiscal_year": cell.FiscalYear, "fiscal_period": cell.FiscalPeriod},
			}
		}

		weights := s.sampler.Dirichlet(n)
		for i := 0; i < n; i++ {
			postings = append(postings, domain.ActualPosting{
				PostingDate:  days[s.sampler.IntN(len(days))],
				FiscalYear:   cell.FiscalYear,
				FiscalPeriod: cell.FiscalPeriod,
				GLAccount:    cell.GLAccount,
				CostCenterID: cell.CostCenterID,
				Amount:       Round2(target * weights[i]),
				DocumentType: domain.DocumentTypes[s.sampler.IntN(len(domain.DocumentTypes))],
			})
		}
	}

	s.logger.Info("actuals table generated",
		slog.Int("postings", len(postings)),
		slog.Int("budget_cells", len(cells)),
		slog.Int("spikes", spikes),
		slog.Int("over_budget_cost_centers", len(overSet)),
		slog.Int("under_budget_cost_centers", len(underSet)))
	return postings, nil
}

// pickTrendCohorts chooses, once per run, the disjoint cost-center cohorts
// that trend over and under budget. Candidates come from the sorted set of
// cost centers present in the budget, and draws are without replacement.
func (s *ActualsSynthesizer) pickTrendCohorts(budget []domain.BudgetCell) (over, under map[string]bool) {
	seen := make(map[string]bool)
	var ccIDs []string
	for _, cell := range budget {
		if !seen[cell.CostCenterID] {
			seen[cell.CostCenterID] = true
			ccIDs = append(ccIDs, cell.CostCenterID)
		}
	}
	sort.Strings(ccIDs)

	over = make(map[string]bool)
	for _, id := range s.sampler.SampleStrings(ccIDs, s.cfg.Actuals.OverBudgetCostCenters) {
		over[id] = true
	}

	var remaining []string
	for _, id := range ccIDs {
		if !over[id] {
			remaining = append(remaining, id)
		}
	}
	under = make(map[string]bool)
	for _, id := range s.sampler.SampleStrings(remaining, s.cfg.Actuals.UnderBudgetCostCenters) {
		under[id] = true
	}
	return over, under
}

// groupToGrain sums budget amounts to the target grain and returns the
// cells ordered by (fiscal year, fiscal period, GL account, cost center).
// The table is already at that grain when it comes from the synthesizer;
// grouping keeps the derivation robust against pre-aggregated input.
func groupToGrain(budget []domain.BudgetCell) []domain.BudgetCell {
	sums := make(map[domain.GrainKey]float64, len(budget))
	for _, cell := range budget {
		sums[cell.GrainKey()] += cell.Amount
	}

	keys := make([]domain.GrainKey, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.FiscalYear != b.FiscalYear {
			return a.FiscalYear < b.FiscalYear
		}
		if a.FiscalPeriod != b.FiscalPeriod {
			return a.FiscalPeriod < b.FiscalPeriod
		}
		if a.GLAccount != b.GLAccount {
			return a.GLAccount < b.GLAccount
		}
		return a.CostCenterID < b.CostCenterID
	})

	cells := make([]domain.BudgetCell, 0, len(keys))
	for _, key := range keys {
		cells = append(cells, domain.BudgetCell{
			FiscalYear:   key.FiscalYear,
			FiscalPeriod: key.FiscalPeriod,
			GLAccount:    key.GLAccount,
			CostCenterID: key.CostCenterID,
			Amount:       sums[key],
		})
	}
	return cells
}
