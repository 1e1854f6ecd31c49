package dimensions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finsynth/internal/config"
	"finsynth/pkg/contracts/domain"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	return &cfg
}

func TestBuildCostCenters(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		wantCount int
	}{
		{name: "default catalog size", count: 12, wantCount: 12},
		{name: "truncated", count: 3, wantCount: 3},
		{name: "single cost center", count: 1, wantCount: 1},
		{name: "capped at catalog size", count: 50, wantCount: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Generation.NumCostCenters = tt.count

			centers := BuildCostCenters(cfg)
			require.Len(t, centers, tt.wantCount)

			// IDs are a zero-padded sequence starting at CC0001
			assert.Equal(t, "CC0001", centers[0].ID)
			assert.Equal(t, "FP&A", centers[0].Dept)
			assert.Equal(t, "FP&A Cost Center", centers[0].Name)
			for _, cc := range centers {
				assert.Len(t, cc.ID, 6)
				assert.NotEmpty(t, cc.Manager)
				assert.Empty(t, cc.ParentID, "hierarchy is flat")
			}
		})
	}
}

func TestBuildGLAccounts(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		wantCount int
	}{
		{name: "full catalog", count: 18, wantCount: 18},
		{name: "truncated to opex only", count: 5, wantCount: 5},
		{name: "capped at catalog size", count: 99, wantCount: 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Generation.NumGLAccounts = tt.count

			accounts := BuildGLAccounts(cfg)
			require.Len(t, accounts, tt.wantCount)

			assert.Equal(t, "600000", accounts[0].Account)
			assert.Equal(t, domain.AccountTypeOPEX, accounts[0].Type)
			for _, gl := range accounts {
				assert.Len(t, gl.Account, 6)
				assert.Contains(t, []domain.AccountType{domain.AccountTypeOPEX, domain.AccountTypeCAPEX}, gl.Type)
			}
		})
	}

	t.Run("full catalog includes capex accounts", func(t *testing.T) {
		cfg := testConfig(t)
		accounts := BuildGLAccounts(cfg)

		capex := 0
		for _, gl := range accounts {
			if gl.Type == domain.AccountTypeCAPEX {
				capex++
			}
		}
		assert.Equal(t, 3, capex)
	})
}

func TestBuildCalendar(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		wantDays int
	}{
		{name: "single month", start: "2024-01-01", end: "2024-01-31", wantDays: 31},
		{name: "leap year", start: "2024-01-01", end: "2024-12-31", wantDays: 366},
		{name: "two full years", start: "2024-01-01", end: "2025-12-31", wantDays: 731},
		{name: "single day", start: "2024-06-15", end: "2024-06-15", wantDays: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Generation.StartDate = tt.start
			cfg.Generation.EndDate = tt.end

			days, err := BuildCalendar(cfg)
			require.NoError(t, err)
			assert.Len(t, days, tt.wantDays)
		})
	}

	t.Run("fiscal fields follow the calendar", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Generation.StartDate = "2024-02-27"
		cfg.Generation.EndDate = "2024-03-02"

		days, err := BuildCalendar(cfg)
		require.NoError(t, err)
		require.Len(t, days, 5)

		assert.Equal(t, 2024, days[0].FiscalYear)
		assert.Equal(t, 2, days[0].FiscalPeriod)
		assert.False(t, days[0].IsMonthEnd)
		// 2024 is a leap year, so Feb 29 is the month end
		assert.Equal(t, 29, days[2].Date.Day())
		assert.True(t, days[2].IsMonthEnd)
		assert.Equal(t, 3, days[3].FiscalPeriod)
	})
}

func TestMonthsInRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       []Month
	}{
		{
			name:  "single month",
			start: "2024-01-05", end: "2024-01-20",
			want: []Month{{2024, 1}},
		},
		{
			name:  "year boundary",
			start: "2024-11-15", end: "2025-02-01",
			want: []Month{{2024, 11}, {2024, 12}, {2025, 1}, {2025, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := time.Parse("2006-01-02", tt.start)
			require.NoError(t, err)
			end, err := time.Parse("2006-01-02", tt.end)
			require.NoError(t, err)

			assert.Equal(t, tt.want, MonthsInRange(start, end))
		})
	}
}

func TestDaysByMonth(t *testing.T) {
	cfg := testConfig(t)
	cfg.Generation.StartDate = "2024-01-15"
	cfg.Generation.EndDate = "2024-02-10"

	days, err := BuildCalendar(cfg)
	require.NoError(t, err)

	grouped := DaysByMonth(days)
	require.Len(t, grouped, 2)
	assert.Len(t, grouped[Month{2024, 1}], 17)
	assert.Len(t, grouped[Month{2024, 2}], 10)

	jan := grouped[Month{2024, 1}]
	assert.True(t, jan[0].Before(jan[len(jan)-1]), "days stay chronological")
}

func TestSparseGLSet(t *testing.T) {
	t.Run("intersects with present accounts", func(t *testing.T) {
		cfg := testConfig(t)
		accounts := BuildGLAccounts(cfg)

		sparse := SparseGLSet(accounts)
		assert.Len(t, sparse, 6)
		assert.True(t, sparse["620000"])
		assert.True(t, sparse["702000"])
		assert.False(t, sparse["600000"])
	})

	t.Run("truncated catalog drops absent sparse codes", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Generation.NumGLAccounts = 5

		sparse := SparseGLSet(BuildGLAccounts(cfg))
		assert.Empty(t, sparse, "first five accounts are all dense")
	})
}
