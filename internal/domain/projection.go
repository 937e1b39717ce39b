package domain

import (
	dec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// ProjectionHorizonYears is the fixed length of the deterministic forward
// pass: 62 calendar years starting at Configuration.StartYear.
const ProjectionHorizonYears = 62

// YearlySnapshot captures one simulated calendar year. Snapshots are created
// once, in year order, and never mutated afterwards.
type YearlySnapshot struct {
	Year         int `json:"year"`
	PrimaryAge   int `json:"primary_age"`
	SecondaryAge int `json:"secondary_age"`

	// Income by source
	PrimarySalary   dec.Money `json:"primary_salary"`
	SecondarySalary dec.Money `json:"secondary_salary"`
	SSIncome        dec.Money `json:"ss_income"`
	RentalCashFlow  dec.Money `json:"rental_cash_flow"`
	RentalTaxable   dec.Money `json:"rental_taxable"`
	GrossIncome     dec.Money `json:"gross_income"`

	// Tax breakdown
	FederalTax       dec.Money `json:"federal_tax"`
	StateTax         dec.Money `json:"state_tax"`
	PayrollTax       dec.Money `json:"payroll_tax"`
	TotalTax         dec.Money `json:"total_tax"`
	EffectiveTaxRate string    `json:"effective_tax_rate"`

	// Expense breakdown
	LivingExpenses   dec.Money `json:"living_expenses"`
	MortgageInterest dec.Money `json:"mortgage_interest"`

	// Education accounts
	EducationContributions dec.Money   `json:"education_contributions"`
	EducationCosts         dec.Money   `json:"education_costs"`
	EducationShortfall     dec.Money   `json:"education_shortfall"`
	EducationBalances      []dec.Money `json:"education_balances"`

	// Savings allocation. TaxableContribution is signed: negative when the
	// year's shortfall was drawn from the taxable account.
	NetSavings              dec.Money `json:"net_savings"`
	TaxDeferredContribution dec.Money `json:"tax_deferred_contribution"`
	TaxableContribution     dec.Money `json:"taxable_contribution"`

	// End-of-year balances
	TaxDeferredBalance dec.Money `json:"tax_deferred_balance"`
	TaxableBalance     dec.Money `json:"taxable_balance"`
	PortfolioGrowth    dec.Money `json:"portfolio_growth"`

	// Readiness
	TargetPortfolio dec.Money `json:"target_portfolio"`
	Ready           bool      `json:"ready"`
	Deficit         bool      `json:"deficit"`
}

// TotalPortfolio is the year's combined end-of-year balance.
func (s YearlySnapshot) TotalPortfolio() dec.Money {
	return s.TaxDeferredBalance.Add(s.TaxableBalance)
}

// ProjectionResult is the full output of one deterministic run.
type ProjectionResult struct {
	Snapshots []YearlySnapshot `json:"snapshots"`

	// FirstReadiness is the snapshot of the first year the portfolio met the
	// target, nil when the target is never reached within the horizon.
	FirstReadiness *YearlySnapshot `json:"first_readiness,omitempty"`

	// EducationOverfunded is set when any education account still holds a
	// positive balance past its beneficiary's final cutoff year.
	EducationOverfunded bool `json:"education_overfunded"`
}

// SimulationSample is one accumulation trial's outcome. All fields are nil
// when the trial never reached the target within the horizon.
type SimulationSample struct {
	CrossingYear      *int       `json:"crossing_year,omitempty"`
	CrossingAge       *int       `json:"crossing_age,omitempty"`
	CrossingPortfolio *dec.Money `json:"crossing_portfolio,omitempty"`
}

// Crossed reports whether the trial reached the target.
func (s SimulationSample) Crossed() bool {
	return s.CrossingYear != nil
}

// ReadinessPoint is one bucket of the year-indexed readiness curve: the
// fraction of trials that had already crossed by that calendar year.
type ReadinessPoint struct {
	Year        int       `json:"year"`
	Probability dec.Money `json:"probability"`
}

// PercentileCrossing is the crossing statistics at one percentile of the
// fixed {10,25,50,75,90} set, computed over successful trials only. Nil
// fields mean too few successes to resolve that percentile. The readiness
// probability is the curve value at the first bucket at or after the
// percentile year.
type PercentileCrossing struct {
	Percentile           int        `json:"percentile"`
	Year                 *int       `json:"year,omitempty"`
	Age                  *int       `json:"age,omitempty"`
	Portfolio            *dec.Money `json:"portfolio,omitempty"`
	ReadinessProbability *dec.Money `json:"readiness_probability,omitempty"`
}

// AccumulationResult aggregates an accumulation Monte Carlo run.
type AccumulationResult struct {
	Trials         int                  `json:"trials"`
	SuccessCount   int                  `json:"success_count"`
	Samples        []SimulationSample   `json:"samples"`
	ReadinessCurve []ReadinessPoint     `json:"readiness_curve"`
	Percentiles    []PercentileCrossing `json:"percentiles"`
}

// SimulationTrajectory is one withdrawal trial: end-of-year combined
// balances from the retirement year forward, plus depletion tracking.
type SimulationTrajectory struct {
	Balances      []dec.Money `json:"balances"`
	Depleted      bool        `json:"depleted"`
	DepletionYear *int        `json:"depletion_year,omitempty"`
}

// YearPercentiles is one row of a year-indexed portfolio percentile table.
type YearPercentiles struct {
	Year int       `json:"year"`
	P10  dec.Money `json:"p10"`
	P25  dec.Money `json:"p25"`
	P50  dec.Money `json:"p50"`
	P75  dec.Money `json:"p75"`
	P90  dec.Money `json:"p90"`
}

// WithdrawalResult aggregates a withdrawal Monte Carlo run.
type WithdrawalResult struct {
	Trials               int                    `json:"trials"`
	SurvivalProbability  dec.Money              `json:"survival_probability"`
	DepletionProbability dec.Money              `json:"depletion_probability"`
	MedianDepletionYear  *int                   `json:"median_depletion_year,omitempty"`
	PercentileTable      []YearPercentiles      `json:"percentile_table"`
	Trajectories         []SimulationTrajectory `json:"trajectories"`
}
