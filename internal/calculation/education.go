package calculation

import (
	"github.com/fireplan/fire-calculator/internal/domain"
	dec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// Education accounts are per-beneficiary state machines: the balance grows
// and accepts contributions only while the beneficiary is under the cutoff
// age, is debited by collegiate costs between the college start age and the
// cutoff, and freezes permanently at cutoff. Balances never go negative;
// an unmet draw surfaces as a shortfall absorbed by the general portfolio.

// EducationFlows aggregates one year's education cash movement across all
// beneficiaries.
type EducationFlows struct {
	Contributions dec.Money
	Costs         dec.Money
	Shortfall     dec.Money
}

// NewEducationBalances returns the starting balance per beneficiary.
func NewEducationBalances(cfg *domain.Configuration) []dec.Money {
	balances := make([]dec.Money, len(cfg.Beneficiaries))
	for i, b := range cfg.Beneficiaries {
		balances[i] = dec.NewMoneyFromDecimal(b.StartingBalance)
	}
	return balances
}

// CollegeCostForYear is the annual collegiate cost in the given year's
// dollars, inflated from the projection start.
func CollegeCostForYear(cfg *domain.Configuration, year int) dec.Money {
	cost := dec.NewMoneyFromDecimal(cfg.CollegeCostAnnual)
	return cost.CompoundGrowth(cfg.EducationInflationRate, year-cfg.StartYear)
}

// AdvanceEducationYear advances every account one year: growth, then the
// capped contribution, then the cost draw. contributionCap bounds the total
// contribution across beneficiaries (the projection passes half the year's
// pre-education net savings); the cap is split proportionally to each
// beneficiary's configured contribution. Returns the new balances and the
// year's flows; the input slice is not modified.
func AdvanceEducationYear(cfg *domain.Configuration, balances []dec.Money, year int, contributionCap dec.Money) ([]dec.Money, EducationFlows) {
	next := make([]dec.Money, len(balances))
	copy(next, balances)
	flows := EducationFlows{
		Contributions: dec.Zero(),
		Costs:         dec.Zero(),
		Shortfall:     dec.Zero(),
	}

	contributionCap = contributionCap.ClampMin(dec.Zero())

	// Total desired contribution across active accounts decides the
	// proportional split of the cap.
	desiredTotal := dec.Zero()
	for i, b := range cfg.Beneficiaries {
		if accountActive(cfg, b, year) {
			desiredTotal = desiredTotal.Add(dec.NewMoneyFromDecimal(cfg.Beneficiaries[i].AnnualContribution))
		}
	}
	allowedTotal := dec.Min(desiredTotal, contributionCap)

	for i, b := range cfg.Beneficiaries {
		if !accountActive(cfg, b, year) {
			continue // frozen at cutoff: no growth, contribution, or draw
		}

		balance := next[i].Grow(cfg.EducationGrowthRate)

		if desiredTotal.IsPositive() && allowedTotal.IsPositive() {
			desired := dec.NewMoneyFromDecimal(b.AnnualContribution)
			share := dec.NewMoneyFromDecimal(
				allowedTotal.Decimal.Mul(desired.Decimal).Div(desiredTotal.Decimal))
			balance = balance.Add(share)
			flows.Contributions = flows.Contributions.Add(share)
		}

		if inCollege(cfg, b, year) {
			cost := CollegeCostForYear(cfg, year)
			flows.Costs = flows.Costs.Add(cost)
			if balance.GreaterThanOrEqual(cost) {
				balance = balance.Sub(cost)
			} else {
				flows.Shortfall = flows.Shortfall.Add(cost.Sub(balance))
				balance = dec.Zero()
			}
		}

		next[i] = balance
	}

	return next, flows
}

// EducationShortfallReserve re-simulates each still-active beneficiary's
// remaining contributions, growth, and costs through their cutoff year and
// returns the total shortfall the general portfolio will have to absorb.
// Pure: no memoization, no mutation of the inputs.
func EducationShortfallReserve(cfg *domain.Configuration, balances []dec.Money, fromYear int) dec.Money {
	reserve := dec.Zero()

	for i, b := range cfg.Beneficiaries {
		if !accountActive(cfg, b, fromYear) {
			continue
		}

		balance := balances[i]
		cutoffYear := b.BirthYear + cfg.EducationCutoffAge
		for year := fromYear + 1; year < cutoffYear; year++ {
			balance = balance.Grow(cfg.EducationGrowthRate)
			balance = balance.Add(dec.NewMoneyFromDecimal(b.AnnualContribution))

			if inCollege(cfg, b, year) {
				cost := CollegeCostForYear(cfg, year)
				if balance.GreaterThanOrEqual(cost) {
					balance = balance.Sub(cost)
				} else {
					reserve = reserve.Add(cost.Sub(balance))
					balance = dec.Zero()
				}
			}
		}
	}

	return reserve
}

// EducationOverfunded reports whether any account retains a positive
// balance at or past its beneficiary's cutoff age.
func EducationOverfunded(cfg *domain.Configuration, balances []dec.Money, year int) bool {
	for i, b := range cfg.Beneficiaries {
		if !accountActive(cfg, b, year) && balances[i].IsPositive() {
			return true
		}
	}
	return false
}

func accountActive(cfg *domain.Configuration, b domain.Beneficiary, year int) bool {
	return year-b.BirthYear < cfg.EducationCutoffAge
}

func inCollege(cfg *domain.Configuration, b domain.Beneficiary, year int) bool {
	age := year - b.BirthYear
	return age >= cfg.CollegeStartAge && age < cfg.EducationCutoffAge
}
