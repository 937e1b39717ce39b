package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
	dec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// Mortgage state is derived, never stored: the remaining balance at any
// point comes from the closed-form amortization formulas, so the projection
// can query any year without replaying the loan from origination.

// MonthlyMortgagePayment computes the fixed payment from the standard
// annuity formula. A zero-rate loan amortizes linearly.
func MonthlyMortgagePayment(cfg *domain.Configuration) dec.Money {
	principal := cfg.MortgagePrincipal
	months := int64(cfg.MortgageTermYears) * 12
	if months == 0 || !principal.IsPositive() {
		return dec.Zero()
	}

	monthlyRate := cfg.MortgageRate.Div(decimal.NewFromInt(12))
	if monthlyRate.IsZero() {
		return dec.NewMoneyFromDecimal(principal.Div(decimal.NewFromInt(months)))
	}

	// P * r * (1+r)^n / ((1+r)^n - 1)
	one := decimal.NewFromInt(1)
	growth := one.Add(monthlyRate).Pow(decimal.NewFromInt(months))
	payment := principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(one))
	return dec.NewMoneyFromDecimal(payment)
}

// RemainingMortgageBalance computes the principal outstanding after the
// given number of payments using the closed-form compounding-balance
// formula: B = P*(1+r)^k - M*((1+r)^k - 1)/r.
func RemainingMortgageBalance(cfg *domain.Configuration, monthsElapsed int) dec.Money {
	principal := cfg.MortgagePrincipal
	totalMonths := cfg.MortgageTermYears * 12
	if monthsElapsed <= 0 {
		return dec.NewMoneyFromDecimal(principal)
	}
	if monthsElapsed >= totalMonths || !principal.IsPositive() {
		return dec.Zero()
	}

	monthlyRate := cfg.MortgageRate.Div(decimal.NewFromInt(12))
	k := decimal.NewFromInt(int64(monthsElapsed))
	if monthlyRate.IsZero() {
		paid := principal.Div(decimal.NewFromInt(int64(totalMonths))).Mul(k)
		return dec.NewMoneyFromDecimal(principal.Sub(paid)).ClampMin(dec.Zero())
	}

	one := decimal.NewFromInt(1)
	growth := one.Add(monthlyRate).Pow(k)
	payment := MonthlyMortgagePayment(cfg).Decimal
	balance := principal.Mul(growth).Sub(payment.Mul(growth.Sub(one)).Div(monthlyRate))
	return dec.NewMoneyFromDecimal(balance).ClampMin(dec.Zero())
}

// YearlyMortgageInterest computes the interest paid during one calendar
// year of the loan. It starts from the closed-form balance at the start of
// the query year, then walks at most 12 months forward so short final years
// accrue only the months actually remaining. Zero once the loan is paid off.
func YearlyMortgageInterest(cfg *domain.Configuration, queryYear int) dec.Money {
	if !cfg.MortgagePrincipal.IsPositive() {
		return dec.Zero()
	}
	payoffYear := cfg.MortgageOriginationYear + cfg.MortgageTermYears
	if queryYear < cfg.MortgageOriginationYear || queryYear >= payoffYear {
		return dec.Zero()
	}

	monthsElapsed := (queryYear - cfg.MortgageOriginationYear) * 12
	totalMonths := cfg.MortgageTermYears * 12
	monthsThisYear := totalMonths - monthsElapsed
	if monthsThisYear > 12 {
		monthsThisYear = 12
	}

	balance := RemainingMortgageBalance(cfg, monthsElapsed).Decimal
	payment := MonthlyMortgagePayment(cfg).Decimal
	monthlyRate := cfg.MortgageRate.Div(decimal.NewFromInt(12))

	var interest decimal.Decimal
	for m := 0; m < monthsThisYear; m++ {
		if !balance.IsPositive() {
			break
		}
		monthInterest := balance.Mul(monthlyRate)
		interest = interest.Add(monthInterest)
		balance = balance.Sub(payment.Sub(monthInterest))
	}
	return dec.NewMoneyFromDecimal(interest)
}

// AnnualMortgagePayment is the full cash outlay for the year, capped at the
// months the loan still runs. Zero after payoff.
func AnnualMortgagePayment(cfg *domain.Configuration, queryYear int) dec.Money {
	if !cfg.MortgagePrincipal.IsPositive() {
		return dec.Zero()
	}
	payoffYear := cfg.MortgageOriginationYear + cfg.MortgageTermYears
	if queryYear < cfg.MortgageOriginationYear || queryYear >= payoffYear {
		return dec.Zero()
	}

	monthsElapsed := (queryYear - cfg.MortgageOriginationYear) * 12
	monthsThisYear := cfg.MortgageTermYears*12 - monthsElapsed
	if monthsThisYear > 12 {
		monthsThisYear = 12
	}
	return dec.NewMoneyFromDecimal(MonthlyMortgagePayment(cfg).Decimal.Mul(decimal.NewFromInt(int64(monthsThisYear))))
}
