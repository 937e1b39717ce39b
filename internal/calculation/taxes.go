package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
	dec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal brackets: 2025 married-filing-jointly table, inflated forward
//    every projection year by the configured bracket-inflation rate.
// 2. State brackets: a three-tier progressive schedule, inflated by the
//    same factor as the federal table.
// 3. Social Security inclusion: 0%/50%/85% of benefits become taxable
//    depending on provisional income against two inflating thresholds.
// 4. Payroll: SS rate up to an inflating wage cap per earner, Medicare on
//    all wages, and a surtax above a fixed (never inflated) threshold.
//
// This is a planning approximation, not a filing tool.

// TaxBracket represents one marginal tax bracket
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// TaxBreakdown is one year's tax liability by component.
type TaxBreakdown struct {
	Federal dec.Money `json:"federal"`
	State   dec.Money `json:"state"`
	Payroll dec.Money `json:"payroll"`
	Total   dec.Money `json:"total"`

	// EffectiveRate is the total tax over total income as a percentage
	// string with one decimal, "0.0" when there is no income.
	EffectiveRate string `json:"effective_rate"`
}

// Statutory constants in start-year dollars.
var (
	federalBrackets2025 = []TaxBracket{
		{decimal.Zero, decimal.NewFromInt(23200), decimal.NewFromFloat(0.10)},
		{decimal.NewFromInt(23200), decimal.NewFromInt(94300), decimal.NewFromFloat(0.12)},
		{decimal.NewFromInt(94300), decimal.NewFromInt(201050), decimal.NewFromFloat(0.22)},
		{decimal.NewFromInt(201050), decimal.NewFromInt(383900), decimal.NewFromFloat(0.24)},
		{decimal.NewFromInt(383900), decimal.NewFromInt(487450), decimal.NewFromFloat(0.32)},
		{decimal.NewFromInt(487450), decimal.NewFromInt(731200), decimal.NewFromFloat(0.35)},
		{decimal.NewFromInt(731200), decimal.NewFromInt(999999999), decimal.NewFromFloat(0.37)},
	}

	stateBracketTable = []TaxBracket{
		{decimal.Zero, decimal.NewFromInt(20000), decimal.NewFromFloat(0.03)},
		{decimal.NewFromInt(20000), decimal.NewFromInt(80000), decimal.NewFromFloat(0.05)},
		{decimal.NewFromInt(80000), decimal.NewFromInt(999999999), decimal.NewFromFloat(0.065)},
	}

	// Social Security provisional-income thresholds (married filing jointly)
	ssThresholdLower = decimal.NewFromInt(32000)
	ssThresholdUpper = decimal.NewFromInt(44000)

	ssPayrollRate   = decimal.NewFromFloat(0.062)
	ssWageBase      = decimal.NewFromInt(176100)
	medicareRate    = decimal.NewFromFloat(0.0145)
	surtaxRate      = decimal.NewFromFloat(0.009)
	surtaxThreshold = decimal.NewFromInt(250000) // fixed, never inflated

	half             = decimal.NewFromFloat(0.5)
	ssUpperInclusion = decimal.NewFromFloat(0.85)
)

// TaxCalculator computes one year's liability from gross income components.
// It is stateless across years: every inflated figure is derived from the
// year offset, so the calculator can be shared between runs.
type TaxCalculator struct {
	params domain.TaxParameters
}

// NewTaxCalculator builds a calculator from the household's tax parameters.
func NewTaxCalculator(params domain.TaxParameters) *TaxCalculator {
	return &TaxCalculator{params: params}
}

// inflationFactor is (1 + bracket inflation)^yearsFromStart.
func (tc *TaxCalculator) inflationFactor(yearsFromStart int) decimal.Decimal {
	if yearsFromStart <= 0 {
		return decimal.NewFromInt(1)
	}
	one := decimal.NewFromInt(1)
	return one.Add(tc.params.BracketInflation).Pow(decimal.NewFromInt(int64(yearsFromStart)))
}

// ComputeYear computes the full tax breakdown for one projection year.
// wages holds each earner's gross wage income; netRental is the rental
// taxable net (may be negative); ssIncome is total Social Security received.
func (tc *TaxCalculator) ComputeYear(yearsFromStart int, wages []dec.Money, netRental, ssIncome dec.Money) TaxBreakdown {
	factor := tc.inflationFactor(yearsFromStart)

	totalWages := dec.Zero()
	for _, w := range wages {
		totalWages = totalWages.Add(w)
	}

	// Provisional income decides how much of Social Security is taxable.
	provisional := totalWages.Decimal.Add(netRental.Decimal).Add(ssIncome.Decimal.Mul(half))
	ssTaxable := decimal.Zero
	switch {
	case provisional.LessThan(ssThresholdLower.Mul(factor)):
		// none taxable
	case provisional.LessThan(ssThresholdUpper.Mul(factor)):
		ssTaxable = ssIncome.Decimal.Mul(half)
	default:
		ssTaxable = ssIncome.Decimal.Mul(ssUpperInclusion)
	}

	grossTaxable := totalWages.Decimal.Add(netRental.Decimal).Add(ssTaxable)

	// Above-the-line allowances, then the larger of standard or itemized.
	// The second allowance phases in: its first projection year uses the
	// reduced value.
	allowances := tc.params.AllowanceOne.Mul(factor)
	if yearsFromStart == 0 {
		allowances = allowances.Add(tc.params.AllowanceTwoFirstYear)
	} else {
		allowances = allowances.Add(tc.params.AllowanceTwo.Mul(factor))
	}
	deduction := decimal.Max(tc.params.StandardDeduction, tc.params.ItemizedDeduction).Mul(factor)

	taxable := grossTaxable.Sub(allowances).Sub(deduction)
	if taxable.LessThan(decimal.Zero) {
		taxable = decimal.Zero
	}

	federal := fillBrackets(taxable, federalBrackets2025, factor)
	state := fillBrackets(taxable, stateBracketTable, factor)
	payroll := tc.payrollTax(wages, totalWages, factor)

	total := federal.Add(state).Add(payroll)

	totalIncome := totalWages.Decimal.Add(netRental.Decimal).Add(ssIncome.Decimal)
	effectiveRate := "0.0"
	if totalIncome.IsPositive() {
		effectiveRate = total.Div(totalIncome).Mul(decimal.NewFromInt(100)).StringFixed(1)
	}

	return TaxBreakdown{
		Federal:       dec.NewMoneyFromDecimal(federal),
		State:         dec.NewMoneyFromDecimal(state),
		Payroll:       dec.NewMoneyFromDecimal(payroll),
		Total:         dec.NewMoneyFromDecimal(total),
		EffectiveRate: effectiveRate,
	}
}

// FederalTaxOnTaxable fills the inflated federal bracket table for an
// already-determined taxable income figure.
func (tc *TaxCalculator) FederalTaxOnTaxable(taxable dec.Money, yearsFromStart int) dec.Money {
	return dec.NewMoneyFromDecimal(fillBrackets(taxable.Decimal, federalBrackets2025, tc.inflationFactor(yearsFromStart)))
}

// fillBrackets runs the standard fill-each-bracket-then-spill algorithm,
// exiting as soon as the remaining income is exhausted.
func fillBrackets(taxable decimal.Decimal, brackets []TaxBracket, factor decimal.Decimal) decimal.Decimal {
	var totalTax decimal.Decimal
	for _, bracket := range brackets {
		low := bracket.Min.Mul(factor)
		if taxable.LessThanOrEqual(low) {
			break
		}
		high := bracket.Max.Mul(factor)
		incomeInBracket := decimal.Min(taxable, high).Sub(low)
		if incomeInBracket.GreaterThan(decimal.Zero) {
			totalTax = totalTax.Add(incomeInBracket.Mul(bracket.Rate))
		}
	}
	return totalTax
}

// payrollTax computes SS + Medicare + surtax. The wage cap inflates with
// the bracket factor; the surtax threshold intentionally does not.
func (tc *TaxCalculator) payrollTax(wages []dec.Money, totalWages dec.Money, factor decimal.Decimal) decimal.Decimal {
	var payroll decimal.Decimal
	wageCap := ssWageBase.Mul(factor)
	for _, w := range wages {
		ssWages := decimal.Min(w.Decimal, wageCap)
		payroll = payroll.Add(ssWages.Mul(ssPayrollRate))
		payroll = payroll.Add(w.Decimal.Mul(medicareRate))
	}
	if totalWages.Decimal.GreaterThan(surtaxThreshold) {
		payroll = payroll.Add(totalWages.Decimal.Sub(surtaxThreshold).Mul(surtaxRate))
	}
	return payroll
}
