package domain

import (
	"github.com/shopspring/decimal"
)

// Configuration holds every input the projection engine needs for a single
// household. It is treated as immutable once validated: the engine never
// writes to it, so the same Configuration can back any number of runs.
type Configuration struct {
	StartYear          int `yaml:"start_year" json:"start_year"`
	PrimaryBirthYear   int `yaml:"primary_birth_year" json:"primary_birth_year"`
	SecondaryBirthYear int `yaml:"secondary_birth_year" json:"secondary_birth_year"`

	// Starting balances split by tax treatment
	StartingTaxDeferred decimal.Decimal `yaml:"starting_tax_deferred" json:"starting_tax_deferred"`
	StartingTaxable     decimal.Decimal `yaml:"starting_taxable" json:"starting_taxable"`

	// Household spending
	AnnualExpenses      decimal.Decimal   `yaml:"annual_expenses" json:"annual_expenses"`
	InflationRate       decimal.Decimal   `yaml:"inflation_rate" json:"inflation_rate"`
	SpendingDeclineAge  int               `yaml:"spending_decline_age" json:"spending_decline_age"`
	SpendingDeclineRates []decimal.Decimal `yaml:"spending_decline_rates" json:"spending_decline_rates"` // three ten-year age bands

	// Primary earner career timeline. Phases are selected by calendar-year
	// ranges and must not overlap.
	FirstSegmentStart   int             `yaml:"first_segment_start" json:"first_segment_start"`
	FirstSegmentEnd     int             `yaml:"first_segment_end" json:"first_segment_end"`
	TransitionStart     int             `yaml:"transition_start" json:"transition_start"`
	TransitionEnd       int             `yaml:"transition_end" json:"transition_end"`
	TransitionSalary    decimal.Decimal `yaml:"transition_salary" json:"transition_salary"`
	ResumedStart        int             `yaml:"resumed_start" json:"resumed_start"`
	ResumedEnd          int             `yaml:"resumed_end" json:"resumed_end"`
	ResumedTenureCredit int             `yaml:"resumed_tenure_credit" json:"resumed_tenure_credit"`
	TerminalStart       int             `yaml:"terminal_start" json:"terminal_start"`
	TerminalEnd         int             `yaml:"terminal_end" json:"terminal_end"`
	TerminalSalary      decimal.Decimal `yaml:"terminal_salary" json:"terminal_salary"`
	TerminalRaiseRate   decimal.Decimal `yaml:"terminal_raise_rate" json:"terminal_raise_rate"`

	// Secondary earner
	SecondarySalary     decimal.Decimal `yaml:"secondary_salary" json:"secondary_salary"`
	SecondaryGrowthRate decimal.Decimal `yaml:"secondary_growth_rate" json:"secondary_growth_rate"`
	SecondaryStart      int             `yaml:"secondary_start" json:"secondary_start"`
	SecondaryEnd        int             `yaml:"secondary_end" json:"secondary_end"`

	// Employer match. The secondary earner's match applies for every
	// employed year; the primary's only inside the two configured windows.
	MatchRate            decimal.Decimal `yaml:"match_rate" json:"match_rate"`
	PrimaryMatchOneStart int             `yaml:"primary_match_one_start" json:"primary_match_one_start"`
	PrimaryMatchOneEnd   int             `yaml:"primary_match_one_end" json:"primary_match_one_end"`
	PrimaryMatchTwoStart int             `yaml:"primary_match_two_start" json:"primary_match_two_start"`
	PrimaryMatchTwoEnd   int             `yaml:"primary_match_two_end" json:"primary_match_two_end"`

	// Social Security, annual benefit in start-year dollars, inflated from
	// each earner's claim year forward.
	PrimarySSClaimAge   int             `yaml:"primary_ss_claim_age" json:"primary_ss_claim_age"`
	PrimarySSAnnual     decimal.Decimal `yaml:"primary_ss_annual" json:"primary_ss_annual"`
	SecondarySSClaimAge int             `yaml:"secondary_ss_claim_age" json:"secondary_ss_claim_age"`
	SecondarySSAnnual   decimal.Decimal `yaml:"secondary_ss_annual" json:"secondary_ss_annual"`

	// Education accounts
	Beneficiaries          []Beneficiary   `yaml:"beneficiaries" json:"beneficiaries"`
	EducationGrowthRate    decimal.Decimal `yaml:"education_growth_rate" json:"education_growth_rate"`
	CollegeCostAnnual      decimal.Decimal `yaml:"college_cost_annual" json:"college_cost_annual"`
	CollegeStartAge        int             `yaml:"college_start_age" json:"college_start_age"`
	EducationCutoffAge     int             `yaml:"education_cutoff_age" json:"education_cutoff_age"`
	EducationInflationRate decimal.Decimal `yaml:"education_inflation_rate" json:"education_inflation_rate"`

	// Rental property and its mortgage
	RentalIncome            decimal.Decimal `yaml:"rental_income" json:"rental_income"`
	RentalExpenses          decimal.Decimal `yaml:"rental_expenses" json:"rental_expenses"`
	VacancyRate             decimal.Decimal `yaml:"vacancy_rate" json:"vacancy_rate"`
	RentalGrowthRate        decimal.Decimal `yaml:"rental_growth_rate" json:"rental_growth_rate"`
	MortgagePrincipal       decimal.Decimal `yaml:"mortgage_principal" json:"mortgage_principal"`
	MortgageRate            decimal.Decimal `yaml:"mortgage_rate" json:"mortgage_rate"`
	MortgageOriginationYear int             `yaml:"mortgage_origination_year" json:"mortgage_origination_year"`
	MortgageTermYears       int             `yaml:"mortgage_term_years" json:"mortgage_term_years"`

	// Taxes
	Taxes TaxParameters `yaml:"taxes" json:"taxes"`

	// Contribution space (per earner, inflated annually)
	DeferralLimit decimal.Decimal `yaml:"deferral_limit" json:"deferral_limit"`
	IRALimit      decimal.Decimal `yaml:"ira_limit" json:"ira_limit"`

	// Nominal growth rates per account type
	ReturnTaxDeferred decimal.Decimal `yaml:"return_tax_deferred" json:"return_tax_deferred"`
	ReturnTaxable     decimal.Decimal `yaml:"return_taxable" json:"return_taxable"`

	// Readiness target
	TargetAnnualSpending     decimal.Decimal `yaml:"target_annual_spending" json:"target_annual_spending"`
	TargetMultiple           decimal.Decimal `yaml:"target_multiple" json:"target_multiple"`
	HealthcareBuffer         decimal.Decimal `yaml:"healthcare_buffer" json:"healthcare_buffer"`
	HealthcareEligibilityAge int             `yaml:"healthcare_eligibility_age" json:"healthcare_eligibility_age"`
}

// Beneficiary is one education-account holder.
type Beneficiary struct {
	BirthYear          int             `yaml:"birth_year" json:"birth_year"`
	StartingBalance    decimal.Decimal `yaml:"starting_balance" json:"starting_balance"`
	AnnualContribution decimal.Decimal `yaml:"annual_contribution" json:"annual_contribution"`
}

// TaxParameters carries the deduction and inflation inputs the tax module
// needs. Bracket tables and payroll rates are statutory constants owned by
// the tax module itself.
type TaxParameters struct {
	AllowanceOne          decimal.Decimal `yaml:"allowance_one" json:"allowance_one"`
	AllowanceTwo          decimal.Decimal `yaml:"allowance_two" json:"allowance_two"`
	AllowanceTwoFirstYear decimal.Decimal `yaml:"allowance_two_first_year" json:"allowance_two_first_year"`
	StandardDeduction     decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	ItemizedDeduction     decimal.Decimal `yaml:"itemized_deduction" json:"itemized_deduction"`
	BracketInflation      decimal.Decimal `yaml:"bracket_inflation" json:"bracket_inflation"`
}

// SimulationSettings controls the Monte Carlo runs.
type SimulationSettings struct {
	Trials        int             `yaml:"trials" json:"trials"`
	MeanReturnPct decimal.Decimal `yaml:"mean_return_pct" json:"mean_return_pct"`
	VolatilityPct decimal.Decimal `yaml:"volatility_pct" json:"volatility_pct"`
	UseHistorical bool            `yaml:"use_historical" json:"use_historical"`
	Seed          int64           `yaml:"seed" json:"seed"`

	// Withdrawal-phase settings
	HorizonEndAge         int             `yaml:"horizon_end_age" json:"horizon_end_age"`
	RetirementYear        int             `yaml:"retirement_year" json:"retirement_year"`
	FallbackDeferredRatio decimal.Decimal `yaml:"fallback_deferred_ratio" json:"fallback_deferred_ratio"`
	DepletionFloor        decimal.Decimal `yaml:"depletion_floor" json:"depletion_floor"`
	LTCGRate              decimal.Decimal `yaml:"ltcg_rate" json:"ltcg_rate"`
	OrdinaryRate          decimal.Decimal `yaml:"ordinary_rate" json:"ordinary_rate"`
}
