package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
	"github.com/fireplan/fire-calculator/pkg/dateutil"
	dec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// The deterministic projection is a single forward pass over the fixed
// 62-year horizon. Every per-year quantity that the Monte Carlo simulators
// also need (expenses, rental, Social Security) is exposed as a pure
// function of the calendar year so they can replay the same schedule.

// LivingExpensesForYear inflates the base annual expenses, then applies the
// age-banded spending decline: once the primary earner passes the configured
// age, each further year compounds a permanent decrement whose rate depends
// on which ten-year band the year falls in.
func LivingExpensesForYear(cfg *domain.Configuration, year int) dec.Money {
	expenses := dec.NewMoneyFromDecimal(cfg.AnnualExpenses).
		CompoundGrowth(cfg.InflationRate, year-cfg.StartYear)

	age := dateutil.AgeInYear(cfg.PrimaryBirthYear, year)
	for a := cfg.SpendingDeclineAge + 1; a <= age; a++ {
		band := (a - cfg.SpendingDeclineAge - 1) / 10
		if band > 2 {
			band = 2
		}
		expenses = dec.NewMoneyFromDecimal(
			expenses.Decimal.Sub(expenses.Decimal.Mul(cfg.SpendingDeclineRates[band])))
	}
	return expenses
}

// SocialSecurityForYear is the household's combined benefit: each earner's
// configured annual amount starts at their claim age and inflates from the
// claim year forward.
func SocialSecurityForYear(cfg *domain.Configuration, year int) dec.Money {
	total := dec.Zero()

	primaryClaim := dateutil.YearForAge(cfg.PrimaryBirthYear, cfg.PrimarySSClaimAge)
	if year >= primaryClaim {
		benefit := dec.NewMoneyFromDecimal(cfg.PrimarySSAnnual).
			CompoundGrowth(cfg.InflationRate, year-primaryClaim)
		total = total.Add(benefit)
	}

	secondaryClaim := dateutil.YearForAge(cfg.SecondaryBirthYear, cfg.SecondarySSClaimAge)
	if year >= secondaryClaim {
		benefit := dec.NewMoneyFromDecimal(cfg.SecondarySSAnnual).
			CompoundGrowth(cfg.InflationRate, year-secondaryClaim)
		total = total.Add(benefit)
	}

	return total
}

// RentalForYear returns the property's cash flow and its tax-relevant net
// income. Cash flow charges the full mortgage payment; taxable net deducts
// only the interest portion.
func RentalForYear(cfg *domain.Configuration, year int) (cashFlow, taxableNet dec.Money) {
	if !cfg.RentalIncome.IsPositive() {
		return dec.Zero(), dec.Zero()
	}

	gross := dec.NewMoneyFromDecimal(cfg.RentalIncome).
		CompoundGrowth(cfg.RentalGrowthRate, year-cfg.StartYear)
	vacancy := gross.Mul(cfg.VacancyRate)
	operating := dec.NewMoneyFromDecimal(cfg.RentalExpenses).
		CompoundGrowth(cfg.InflationRate, year-cfg.StartYear)

	effective := gross.Sub(vacancy).Sub(operating)
	cashFlow = effective.Sub(AnnualMortgagePayment(cfg, year))
	taxableNet = effective.Sub(YearlyMortgageInterest(cfg, year))
	return cashFlow, taxableNet
}

// TargetPortfolioForYear is the dynamic readiness threshold: inflated target
// spending times the multiple, plus the forward-looking education shortfall
// reserve, plus the healthcare buffer for every year the primary earner is
// still short of the eligibility age. Ages are start-of-year ages.
func TargetPortfolioForYear(cfg *domain.Configuration, year int, eduBalances []dec.Money) dec.Money {
	target := dec.NewMoneyFromDecimal(cfg.TargetAnnualSpending).
		CompoundGrowth(cfg.InflationRate, year-cfg.StartYear).
		Mul(cfg.TargetMultiple)

	target = target.Add(EducationShortfallReserve(cfg, eduBalances, year))

	yearsShort := dateutil.YearsUntilAge(cfg.PrimaryBirthYear, year, cfg.HealthcareEligibilityAge)
	if yearsShort > 0 {
		buffer := dec.NewMoneyFromDecimal(cfg.HealthcareBuffer).
			Mul(decimal.NewFromInt(int64(yearsShort)))
		target = target.Add(buffer)
	}

	return target
}

// contributionSpace is the inflated tax-deferred capacity: two limits for
// each of the two earners, plus the employer match.
func contributionSpace(cfg *domain.Configuration, year int, match dec.Money) dec.Money {
	limits := dec.NewMoneyFromDecimal(cfg.DeferralLimit.Add(cfg.IRALimit)).
		Mul(decimal.NewFromInt(2)).
		CompoundGrowth(cfg.InflationRate, year-cfg.StartYear)
	return limits.Add(match)
}

// GenerateProjection runs the deterministic engine over the full horizon.
// The configuration must already be validated; it is never mutated.
func GenerateProjection(cfg *domain.Configuration) *domain.ProjectionResult {
	snapshots := make([]domain.YearlySnapshot, 0, domain.ProjectionHorizonYears)

	taxDeferred := dec.NewMoneyFromDecimal(cfg.StartingTaxDeferred)
	taxable := dec.NewMoneyFromDecimal(cfg.StartingTaxable)
	eduBalances := NewEducationBalances(cfg)

	var firstReadiness *domain.YearlySnapshot
	ready := false
	taxCalc := NewTaxCalculator(cfg.Taxes)

	for offset := 0; offset < domain.ProjectionHorizonYears; offset++ {
		year := cfg.StartYear + offset

		primarySalary := PrimarySalary(cfg, year)
		secondarySalary := SecondarySalary(cfg, year)
		ss := SocialSecurityForYear(cfg, year)
		rentalCash, rentalTaxable := RentalForYear(cfg, year)

		taxes := taxCalc.ComputeYear(
			offset, []dec.Money{primarySalary, secondarySalary}, rentalTaxable, ss)

		livingExpenses := LivingExpensesForYear(cfg, year)
		grossIncome := primarySalary.Add(secondarySalary).Add(ss).Add(rentalCash)
		preEducation := grossIncome.Sub(taxes.Total).Sub(livingExpenses)

		// Education contributions are capped at half the year's
		// pre-education net savings.
		eduCap := preEducation.PercentOf(decimal.NewFromInt(50)).ClampMin(dec.Zero())
		newEduBalances, eduFlows := AdvanceEducationYear(cfg, eduBalances, year, eduCap)
		eduBalances = newEduBalances

		netSavings := preEducation.Sub(eduFlows.Contributions).Sub(eduFlows.Shortfall)

		// Allocate: employer match always lands tax-deferred while anyone
		// is employed; positive savings fill the remaining deferred space
		// and overflow to taxable; negative savings draw taxable first and
		// never raid the deferred account.
		match := EmployerMatch(cfg, year, primarySalary, secondarySalary)
		space := contributionSpace(cfg, year, match)

		deferredContribution := match
		taxableContribution := dec.Zero()
		deficit := false

		if netSavings.GreaterThanOrEqual(dec.Zero()) {
			remaining := space.Sub(match).ClampMin(dec.Zero())
			fromSavings := dec.Min(netSavings, remaining)
			deferredContribution = deferredContribution.Add(fromSavings)
			taxableContribution = netSavings.Sub(fromSavings)
		} else {
			needed := dec.Zero().Sub(netSavings)
			withdrawal := dec.Min(needed, taxable)
			taxableContribution = dec.Zero().Sub(withdrawal)
			if withdrawal.LessThan(needed) {
				deficit = true
			}
		}

		// Growth applies after the year's flows.
		beforeGrowth := taxDeferred.Add(deferredContribution).Add(taxable).Add(taxableContribution)
		taxDeferred = taxDeferred.Add(deferredContribution).Grow(cfg.ReturnTaxDeferred)
		taxable = taxable.Add(taxableContribution).Grow(cfg.ReturnTaxable).ClampMin(dec.Zero())
		growth := taxDeferred.Add(taxable).Sub(beforeGrowth)

		target := TargetPortfolioForYear(cfg, year, eduBalances)
		if !ready && taxDeferred.Add(taxable).GreaterThanOrEqual(target) {
			ready = true
		}

		balancesCopy := make([]dec.Money, len(eduBalances))
		copy(balancesCopy, eduBalances)

		snapshot := domain.YearlySnapshot{
			Year:         year,
			PrimaryAge:   dateutil.AgeInYear(cfg.PrimaryBirthYear, year),
			SecondaryAge: dateutil.AgeInYear(cfg.SecondaryBirthYear, year),

			PrimarySalary:   primarySalary,
			SecondarySalary: secondarySalary,
			SSIncome:        ss,
			RentalCashFlow:  rentalCash,
			RentalTaxable:   rentalTaxable,
			GrossIncome:     grossIncome,

			FederalTax:       taxes.Federal,
			StateTax:         taxes.State,
			PayrollTax:       taxes.Payroll,
			TotalTax:         taxes.Total,
			EffectiveTaxRate: taxes.EffectiveRate,

			LivingExpenses:   livingExpenses,
			MortgageInterest: YearlyMortgageInterest(cfg, year),

			EducationContributions: eduFlows.Contributions,
			EducationCosts:         eduFlows.Costs,
			EducationShortfall:     eduFlows.Shortfall,
			EducationBalances:      balancesCopy,

			NetSavings:              netSavings,
			TaxDeferredContribution: deferredContribution,
			TaxableContribution:     taxableContribution,

			TaxDeferredBalance: taxDeferred,
			TaxableBalance:     taxable,
			PortfolioGrowth:    growth,

			TargetPortfolio: target,
			Ready:           ready,
			Deficit:         deficit,
		}
		snapshots = append(snapshots, snapshot)

		if ready && firstReadiness == nil {
			copied := snapshot
			firstReadiness = &copied
		}
	}

	finalYear := cfg.StartYear + domain.ProjectionHorizonYears - 1
	return &domain.ProjectionResult{
		Snapshots:           snapshots,
		FirstReadiness:      firstReadiness,
		EducationOverfunded: EducationOverfunded(cfg, eduBalances, finalYear),
	}
}
