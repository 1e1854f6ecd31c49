package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const dateFormat = "2006-01-02"

// Config represents the complete generator configuration
type Config struct {
	Generation GenerationConfig `yaml:"generation" envconfig:"GENERATION"`
	Budget     BudgetConfig     `yaml:"budget" envconfig:"BUDGET"`
	Actuals    ActualsConfig    `yaml:"actuals" envconfig:"ACTUALS"`
	Output     OutputConfig     `yaml:"output" envconfig:"OUTPUT"`
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
}

// GenerationConfig contains the date range, dimension sizes and the seed
type GenerationConfig struct {
	Seed           uint64 `yaml:"seed" envconfig:"SEED"`
	StartDate      string `yaml:"start_date" envconfig:"START_DATE" validate:"required,datetime=2006-01-02"`
	EndDate        string `yaml:"end_date" envconfig:"END_DATE" validate:"required,datetime=2006-01-02"`
	NumCostCenters int    `yaml:"num_cost_centers" envconfig:"NUM_COST_CENTERS" validate:"min=1"`
	NumGLAccounts  int    `yaml:"num_gl_accounts" envconfig:"NUM_GL_ACCOUNTS" validate:"min=1"`
}

// BudgetConfig contains the budget synthesis knobs
type BudgetConfig struct {
	BaseOPEX             float64 `yaml:"base_opex" envconfig:"BASE_OPEX" validate:"gt=0"`
	BaseCAPEX            float64 `yaml:"base_capex" envconfig:"BASE_CAPEX" validate:"gt=0"`
	NoiseSigma           float64 `yaml:"noise_sigma" envconfig:"NOISE_SIGMA" validate:"gt=0"`
	SeasonalQ4Uplift     float64 `yaml:"seasonal_q4_uplift" envconfig:"SEASONAL_Q4_UPLIFT" validate:"min=0"`
	SeasonalSummerUplift float64 `yaml:"seasonal_summer_uplift" envconfig:"SEASONAL_SUMMER_UPLIFT" validate:"min=0"`
	SparseGLProbability  float64 `yaml:"sparse_gl_probability" envconfig:"SPARSE_GL_PROBABILITY" validate:"min=0,max=1"`
}

// ActualsConfig contains the actuals synthesis knobs
type ActualsConfig struct {
	NoiseSigma             float64 `yaml:"noise_sigma" envconfig:"NOISE_SIGMA" validate:"gt=0"`
	AvgPostingsOPEX        float64 `yaml:"avg_postings_opex" envconfig:"AVG_POSTINGS_OPEX" validate:"gt=0"`
	AvgPostingsCAPEX       float64 `yaml:"avg_postings_capex" envconfig:"AVG_POSTINGS_CAPEX" validate:"gt=0"`
	MaxPostingsPerMonth    int     `yaml:"max_postings_per_month" envconfig:"MAX_POSTINGS_PER_MONTH" validate:"min=1"`
	OverBudgetCostCenters  int     `yaml:"over_budget_cost_centers" envconfig:"OVER_BUDGET_COST_CENTERS" validate:"min=0"`
	UnderBudgetCostCenters int     `yaml:"under_budget_cost_centers" envconfig:"UNDER_BUDGET_COST_CENTERS" validate:"min=0"`
	OverBudgetBias         float64 `yaml:"over_budget_bias" envconfig:"OVER_BUDGET_BIAS"`
	UnderBudgetBias        float64 `yaml:"under_budget_bias" envconfig:"UNDER_BUDGET_BIAS"`
	SpikeProbability       float64 `yaml:"spike_probability" envconfig:"SPIKE_PROBABILITY" validate:"min=0,max=1"`
	SpikeMin               float64 `yaml:"spike_min" envconfig:"SPIKE_MIN" validate:"min=0"`
	SpikeMax               float64 `yaml:"spike_max" envconfig:"SPIKE_MAX" validate:"gtefield=SpikeMin"`
}

// OutputConfig contains the output directory and workbook settings
type OutputConfig struct {
	Dir          string `yaml:"dir" envconfig:"DIR" validate:"required"`
	Workbook     bool   `yaml:"workbook" envconfig:"WORKBOOK"`
	WorkbookFile string `yaml:"workbook_file" envconfig:"WORKBOOK_FILE" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Default returns the built-in configuration, matching the reference dataset
// shipped with the analytics demos.
func Default() Config {
	return Config{
		Generation: GenerationConfig{
			Seed:           42,
			StartDate:      "2024-01-01",
			EndDate:        "2025-12-31",
			NumCostCenters: 12,
			NumGLAccounts:  18,
		},
		Budget: BudgetConfig{
			BaseOPEX:             3000.0,
			BaseCAPEX:            8000.0,
			NoiseSigma:           0.08,
			SeasonalQ4Uplift:     0.15,
			SeasonalSummerUplift: 0.05,
			SparseGLProbability:  0.35,
		},
		Actuals: ActualsConfig{
			NoiseSigma:             0.12,
			AvgPostingsOPEX:        4,
			AvgPostingsCAPEX:       2,
			MaxPostingsPerMonth:    14,
			OverBudgetCostCenters:  4,
			UnderBudgetCostCenters: 3,
			OverBudgetBias:         0.08,
			UnderBudgetBias:        0.07,
			SpikeProbability:       0.03,
			SpikeMin:               0.25,
			SpikeMax:               0.60,
		},
		Output: OutputConfig{
			Dir:          "finance_mvp_data",
			Workbook:     false,
			WorkbookFile: "finance_demo.xlsx",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "stdout",
			FilePath: "logs/finsynth.log",
		},
	}
}

// Load builds the effective configuration: built-in defaults, overlaid by the
// YAML file at configPath (if non-empty and present), overlaid by FINSYNTH_*
// environment variables, then validated.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := loadFromFile(configPath, &cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
	}

	if err := envconfig.Process("FINSYNTH", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadFromFile overlays configuration from a YAML file
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks field constraints and the date range ordering
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	start, end, err := c.Generation.DateRange()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("config validation failed: end_date %s is before start_date %s",
			c.Generation.EndDate, c.Generation.StartDate)
	}
	return nil
}

// DateRange parses the configured start and end dates. Dates are stored as
// strings so they round-trip through YAML and env vars unambiguously.
func (g GenerationConfig) DateRange() (time.Time, time.Time, error) {
	start, err := time.Parse(dateFormat, g.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date: %w", err)
	}
	end, err := time.Parse(dateFormat, g.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date: %w", err)
	}
	return start, end, nil
}
