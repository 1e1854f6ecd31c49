package synth

import (
	"log/slog"

	"finsynth/internal/config"
	"finsynth/internal/dimensions"
	"finsynth/internal/errors"
	"finsynth/pkg/contracts/domain"
)

// Cost-center and GL scale factors are interpolated linearly across the
// ordered dimension lists, so later entries model bigger spenders.
const (
	ccScaleMin = 0.8
	ccScaleMax = 1.6
	glScaleMin = 0.6
	glScaleMax = 1.8
)

// BudgetSynthesizer produces one budget figure per month, cost center and
// GL account, with sparse accounts skipping some months.
type BudgetSynthesizer struct {
	cfg     *config.Config
	sampler *Sampler
	logger  *slog.Logger
}

// NewBudgetSynthesizer creates a budget synthesizer drawing from sampler
func NewBudgetSynthesizer(cfg *config.Config, sampler *Sampler, logger *slog.Logger) *BudgetSynthesizer {
	return &BudgetSynthesizer{cfg: cfg, sampler: sampler, logger: logger}
}

// Generate builds the budget table for every month in the configured range.
// Cells are emitted in month, cost-center, GL order; that order is part of
// the determinism contract, since it fixes how random draws are consumed.
func (s *BudgetSynthesizer) Generate(costCenters []domain.CostCenter, accounts []domain.GLAccount) ([]domain.BudgetCell, error) {
	start, end, err := s.cfg.Generation.DateRange()
	if err != nil {
		return nil, errors.NewExecution("budget", err)
	}

	months := dimensions.MonthsInRange(start, end)
	sparse := dimensions.SparseGLSet(accounts)

	var cells []domain.BudgetCell
	skipped := 0
	for _, month := range months {
		seasonal := s.seasonalFactor(month.FiscalPeriod)

		for ccIdx, cc := range costCenters {
			ccScale := interpolate(ccScaleMin, ccScaleMax, ccIdx, len(costCenters))

			for glIdx, gl := range accounts {
				if sparse[gl.Account] && s.sampler.Float64() < s.cfg.Budget.SparseGLProbability {
					skipped++
					continue
				}

				base := s.cfg.Budget.BaseOPEX
				if gl.Type == domain.AccountTypeCAPEX {
					base = s.cfg.Budget.BaseCAPEX
				}
				glScale := interpolate(glScaleMin, glScaleMax, glIdx, len(accounts))
				noise := s.sampler.Normal(1.0, s.cfg.Budget.NoiseSigma)

				amount := base * ccScale * glScale * seasonal * noise
				if amount < 0 {
					amount = 0
				}

				cells = append(cells, domain.BudgetCell{
					FiscalYear:   month.FiscalYear,
					FiscalPeriod: month.FiscalPeriod,
					GLAccount:    gl.Account,
					CostCenterID: cc.ID,
					Amount:       Round2(amount),
				})
			}
		}
	}

	if err := checkGrainUnique(cells); err != nil {
		return nil, err
	}

	s.logger.Info("budget table generated",
		slog.Int("cells", len(cells)),
		slog.Int("months", len(months)),
		slog.Int("sparse_skips", skipped))
	return cells, nil
}

// seasonalFactor returns the seasonal multiplier for a fiscal period:
// a Q4 uplift for periods 10-12 and a smaller summer uplift for 6-8.
func (s *BudgetSynthesizer) seasonalFactor(period int) float64 {
	switch {
	case period >= 10 && period <= 12:
		return 1.0 + s.cfg.Budget.SeasonalQ4Uplift
	case period >= 6 && period <= 8:
		return 1.0 + s.cfg.Budget.SeasonalSummerUplift
	default:
		return 1.0
	}
}

// interpolate maps index i of an n-element list onto [min, max] linearly.
// A single-element list gets the minimum.
func interpolate(min, max float64, i, n int) float64 {
	den := n - 1
	if den < 1 {
		den = 1
	}
	return min + (float64(i)/float64(den))*(max-min)
}

// checkGrainUnique verifies the budget grain is unique. The generation loop
// cannot produce duplicates, so a hit here means the generator itself broke.
func checkGrainUnique(cells []domain.BudgetCell) error {
	seen := make(map[domain.GrainKey]bool, len(cells))
	dupes := 0
	for _, cell := range cells {
		key := cell.GrainKey()
		if seen[key] {
			dupes++
		}
		seen[key] = true
	}
	if dupes > 0 {
		return errors.NewDuplicateGrain("budget", dupes)
	}
	return nil
}
