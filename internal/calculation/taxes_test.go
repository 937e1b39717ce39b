package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fireplan/fire-calculator/internal/domain"
	dec "github.com/fireplan/fire-calculator/pkg/decimal"
)

func testTaxParams() domain.TaxParameters {
	return domain.TaxParameters{
		AllowanceOne:          decimal.NewFromInt(4000),
		AllowanceTwo:          decimal.NewFromInt(4000),
		AllowanceTwoFirstYear: decimal.NewFromInt(2000),
		StandardDeduction:     decimal.NewFromInt(30000),
		ItemizedDeduction:     decimal.NewFromInt(24000),
		BracketInflation:      decimal.NewFromFloat(0.02),
	}
}

// TestFederalBracketFill pins the reference point: $50,000 of taxable income
// at the start-year bracket table owes about $5,536.
func TestFederalBracketFill(t *testing.T) {
	calc := NewTaxCalculator(testTaxParams())

	tests := []struct {
		name        string
		taxable     int64
		expectedTax float64
		tolerance   float64
	}{
		{"reference fifty thousand", 50000, 5536, 1},
		{"first bracket only", 20000, 2000, 0.01},
		{"bracket boundary", 23200, 2320, 0.01},
		{"spanning three brackets", 150000, 23106, 1}, // 2320 + 8532 + 12254
		{"zero taxable", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.FederalTaxOnTaxable(dec.NewMoneyFromInt(tt.taxable), 0)
			f, _ := got.Float64()
			assert.InDelta(t, tt.expectedTax, f, tt.tolerance)
		})
	}
}

func TestFederalBracketInflation(t *testing.T) {
	calc := NewTaxCalculator(testTaxParams())

	base := calc.FederalTaxOnTaxable(dec.NewMoneyFromInt(100000), 0)
	later := calc.FederalTaxOnTaxable(dec.NewMoneyFromInt(100000), 10)
	assert.True(t, later.LessThan(base),
		"the same nominal income should owe less once brackets inflate: year 0 %s vs year 10 %s", base, later)
}

func TestZeroIncomeEffectiveRate(t *testing.T) {
	calc := NewTaxCalculator(testTaxParams())

	breakdown := calc.ComputeYear(0, []dec.Money{dec.Zero(), dec.Zero()}, dec.Zero(), dec.Zero())
	assert.Equal(t, "0.0", breakdown.EffectiveRate)
	assert.True(t, breakdown.Total.IsZero())
}

func TestSocialSecurityInclusionTiers(t *testing.T) {
	params := testTaxParams()
	params.BracketInflation = decimal.Zero
	calc := NewTaxCalculator(params)

	ss := dec.NewMoneyFromInt(40000)

	// Provisional income 20k: below the lower threshold, none of the
	// benefit is taxable and nothing clears the deductions.
	low := calc.ComputeYear(5, []dec.Money{dec.Zero()}, dec.Zero(), ss)
	assert.True(t, low.Federal.IsZero(), "got %s", low.Federal)

	// Provisional 40k: half the benefit becomes taxable.
	mid := calc.ComputeYear(5, []dec.Money{dec.NewMoneyFromInt(20000)}, dec.Zero(), ss)

	// Provisional 80k: 85% of the benefit becomes taxable.
	high := calc.ComputeYear(5, []dec.Money{dec.NewMoneyFromInt(60000)}, dec.Zero(), ss)

	assert.True(t, mid.Federal.GreaterThan(low.Federal))
	assert.True(t, high.Federal.GreaterThan(mid.Federal))

	// mid: 20000 wages + 20000 taxable SS - 38000 deductions = 2000 taxable
	midF, _ := mid.Federal.Float64()
	assert.InDelta(t, 200, midF, 0.01)
}

func TestFirstYearAllowance(t *testing.T) {
	params := testTaxParams()
	params.BracketInflation = decimal.Zero
	calc := NewTaxCalculator(params)

	wages := []dec.Money{dec.NewMoneyFromInt(90000)}
	yearZero := calc.ComputeYear(0, wages, dec.Zero(), dec.Zero())
	yearOne := calc.ComputeYear(1, wages, dec.Zero(), dec.Zero())

	// With inflation pinned to zero the only difference is the second
	// allowance's reduced first-year value, so year 0 owes more.
	assert.True(t, yearZero.Federal.GreaterThan(yearOne.Federal))
}

func TestPayrollTax(t *testing.T) {
	params := testTaxParams()
	params.BracketInflation = decimal.Zero
	calc := NewTaxCalculator(params)

	tests := []struct {
		name     string
		wages    []int64
		expected float64
	}{
		// 6.2% + 1.45% on wages under the cap
		{"single earner under cap", []int64{100000}, 7650},
		// SS capped at 176100: 10918.20 + 2900 medicare
		{"single earner over cap", []int64{200000}, 13818.20},
		// two earners, 300k household: 18600 SS + 4350 medicare + 450 surtax
		{"household over surtax threshold", []int64{150000, 150000}, 23400},
		{"no wages", []int64{0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wages := make([]dec.Money, len(tt.wages))
			for i, w := range tt.wages {
				wages[i] = dec.NewMoneyFromInt(w)
			}
			breakdown := calc.ComputeYear(0, wages, dec.Zero(), dec.Zero())
			got, _ := breakdown.Payroll.Float64()
			assert.InDelta(t, tt.expected, got, 0.01)
		})
	}
}

func TestEffectiveRateFormat(t *testing.T) {
	calc := NewTaxCalculator(testTaxParams())

	breakdown := calc.ComputeYear(0, []dec.Money{dec.NewMoneyFromInt(120000)}, dec.Zero(), dec.Zero())
	assert.Regexp(t, `^\d+\.\d$`, breakdown.EffectiveRate)
	assert.True(t, breakdown.Total.Equal(breakdown.Federal.Add(breakdown.State).Add(breakdown.Payroll)))
}
