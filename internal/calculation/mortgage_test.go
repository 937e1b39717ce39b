package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireplan/fire-calculator/internal/domain"
)

func testMortgageConfig() *domain.Configuration {
	return &domain.Configuration{
		MortgagePrincipal:       decimal.NewFromInt(400000),
		MortgageRate:            decimal.NewFromFloat(0.0275),
		MortgageOriginationYear: 2020,
		MortgageTermYears:       30,
	}
}

func TestMonthlyMortgagePayment(t *testing.T) {
	cfg := testMortgageConfig()
	payment, _ := MonthlyMortgagePayment(cfg).Float64()
	assert.InDelta(t, 1632.96, payment, 0.01,
		"$400k at 2.75%% over 30 years")
}

func TestMonthlyMortgagePayment_ZeroRate(t *testing.T) {
	cfg := testMortgageConfig()
	cfg.MortgageRate = decimal.Zero
	payment, _ := MonthlyMortgagePayment(cfg).Float64()
	assert.InDelta(t, 400000.0/360, payment, 0.01)
}

func TestYearlyInterestDeclines(t *testing.T) {
	cfg := testMortgageConfig()

	year1 := YearlyMortgageInterest(cfg, 2020)
	year6 := YearlyMortgageInterest(cfg, 2025)

	require.True(t, year1.IsPositive())
	require.True(t, year6.IsPositive())
	assert.True(t, year6.LessThan(year1),
		"interest must decline as principal amortizes: year 1 %s, year 6 %s", year1, year6)

	// First-year interest is close to principal * rate.
	y1, _ := year1.Float64()
	assert.InDelta(t, 400000*0.0275, y1, 600)
}

func TestYearlyInterestZeroAfterPayoff(t *testing.T) {
	cfg := testMortgageConfig()

	tests := []struct {
		name string
		year int
	}{
		{"payoff year", 2050},
		{"after payoff", 2060},
		{"before origination", 2015},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, YearlyMortgageInterest(cfg, tt.year).IsZero())
			assert.True(t, AnnualMortgagePayment(cfg, tt.year).IsZero())
		})
	}
}

func TestRemainingBalance(t *testing.T) {
	cfg := testMortgageConfig()

	assert.True(t, RemainingMortgageBalance(cfg, 0).Equal(
		RemainingMortgageBalance(cfg, -1)), "before origination the full principal is outstanding")

	start, _ := RemainingMortgageBalance(cfg, 0).Float64()
	assert.InDelta(t, 400000, start, 0.01)

	// Balance decreases monotonically and hits zero by the final payment.
	mid, _ := RemainingMortgageBalance(cfg, 180).Float64()
	assert.Greater(t, start, mid)
	assert.Greater(t, mid, 0.0)
	assert.True(t, RemainingMortgageBalance(cfg, 360).IsZero())

	// Closed form agrees with one month of manual amortization.
	payment, _ := MonthlyMortgagePayment(cfg).Float64()
	oneMonth, _ := RemainingMortgageBalance(cfg, 1).Float64()
	expected := 400000*(1+0.0275/12) - payment
	assert.InDelta(t, expected, oneMonth, 0.01)
}

func TestAnnualPaymentFullYear(t *testing.T) {
	cfg := testMortgageConfig()
	payment, _ := MonthlyMortgagePayment(cfg).Float64()
	annual, _ := AnnualMortgagePayment(cfg, 2030).Float64()
	assert.InDelta(t, payment*12, annual, 0.01)
}

func TestNoMortgageConfigured(t *testing.T) {
	cfg := &domain.Configuration{}
	assert.True(t, MonthlyMortgagePayment(cfg).IsZero())
	assert.True(t, YearlyMortgageInterest(cfg, 2030).IsZero())
}
