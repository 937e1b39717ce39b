package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/fireplan/fire-calculator/internal/domain"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a household configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration checks the structural invariants the engine assumes:
// ordered phase boundaries, finite sane rates, non-negative balances. The
// engine itself does not re-validate.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.StartYear <= 0 {
		return fmt.Errorf("start year is required")
	}
	if config.PrimaryBirthYear <= 0 || config.PrimaryBirthYear > config.StartYear {
		return fmt.Errorf("primary birth year must be set and precede the start year")
	}
	if config.SecondaryBirthYear <= 0 || config.SecondaryBirthYear > config.StartYear {
		return fmt.Errorf("secondary birth year must be set and precede the start year")
	}

	if config.StartingTaxDeferred.LessThan(decimal.Zero) {
		return fmt.Errorf("starting tax-deferred balance cannot be negative")
	}
	if config.StartingTaxable.LessThan(decimal.Zero) {
		return fmt.Errorf("starting taxable balance cannot be negative")
	}
	if config.AnnualExpenses.LessThan(decimal.Zero) {
		return fmt.Errorf("annual expenses cannot be negative")
	}

	if err := ip.validateRate("inflation rate", config.InflationRate); err != nil {
		return err
	}
	if len(config.SpendingDeclineRates) != 3 {
		return fmt.Errorf("exactly three spending decline rates are required, got %d", len(config.SpendingDeclineRates))
	}
	for i, r := range config.SpendingDeclineRates {
		if err := ip.validateRate(fmt.Sprintf("spending decline rate %d", i+1), r); err != nil {
			return err
		}
	}

	if err := ip.validateCareer(config); err != nil {
		return err
	}

	if config.MatchRate.LessThan(decimal.Zero) || config.MatchRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("match rate must be between 0 and 1")
	}
	if config.DeferralLimit.LessThan(decimal.Zero) || config.IRALimit.LessThan(decimal.Zero) {
		return fmt.Errorf("contribution limits cannot be negative")
	}

	if config.PrimarySSClaimAge < 0 || config.SecondarySSClaimAge < 0 {
		return fmt.Errorf("social security claim ages cannot be negative")
	}
	if config.PrimarySSAnnual.LessThan(decimal.Zero) || config.SecondarySSAnnual.LessThan(decimal.Zero) {
		return fmt.Errorf("social security benefits cannot be negative")
	}

	for i, b := range config.Beneficiaries {
		if b.BirthYear <= 0 {
			return fmt.Errorf("beneficiary %d: birth year is required", i)
		}
		if b.StartingBalance.LessThan(decimal.Zero) {
			return fmt.Errorf("beneficiary %d: starting balance cannot be negative", i)
		}
		if b.AnnualContribution.LessThan(decimal.Zero) {
			return fmt.Errorf("beneficiary %d: annual contribution cannot be negative", i)
		}
	}
	if len(config.Beneficiaries) > 0 {
		if config.CollegeStartAge > config.EducationCutoffAge {
			return fmt.Errorf("college start age cannot exceed the education cutoff age")
		}
		if config.CollegeCostAnnual.LessThan(decimal.Zero) {
			return fmt.Errorf("college cost cannot be negative")
		}
	}

	if config.VacancyRate.LessThan(decimal.Zero) || config.VacancyRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("vacancy rate must be between 0 and 1")
	}
	if config.MortgagePrincipal.IsPositive() {
		if config.MortgageTermYears <= 0 {
			return fmt.Errorf("mortgage term must be positive")
		}
		if config.MortgageRate.LessThan(decimal.Zero) {
			return fmt.Errorf("mortgage rate cannot be negative")
		}
	}

	if config.Taxes.StandardDeduction.LessThan(decimal.Zero) || config.Taxes.ItemizedDeduction.LessThan(decimal.Zero) {
		return fmt.Errorf("deductions cannot be negative")
	}

	if config.TargetMultiple.LessThan(decimal.Zero) {
		return fmt.Errorf("target multiple cannot be negative")
	}
	if config.HealthcareBuffer.LessThan(decimal.Zero) {
		return fmt.Errorf("healthcare buffer cannot be negative")
	}

	return nil
}

// ValidateSimulationSettings checks the stochastic-run settings.
func (ip *InputParser) ValidateSimulationSettings(settings *domain.SimulationSettings) error {
	if settings.Trials <= 0 {
		return fmt.Errorf("trial count must be positive")
	}
	if !settings.UseHistorical {
		if settings.VolatilityPct.LessThan(decimal.Zero) {
			return fmt.Errorf("volatility cannot be negative")
		}
	}
	if settings.FallbackDeferredRatio.LessThan(decimal.Zero) || settings.FallbackDeferredRatio.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("fallback deferred ratio must be between 0 and 1")
	}
	return nil
}

func (ip *InputParser) validateCareer(config *domain.Configuration) error {
	type phase struct {
		name       string
		start, end int
	}
	phases := []phase{
		{"first segment", config.FirstSegmentStart, config.FirstSegmentEnd},
		{"transition", config.TransitionStart, config.TransitionEnd},
		{"resumed segment", config.ResumedStart, config.ResumedEnd},
		{"terminal segment", config.TerminalStart, config.TerminalEnd},
		{"secondary employment", config.SecondaryStart, config.SecondaryEnd},
		{"primary match window one", config.PrimaryMatchOneStart, config.PrimaryMatchOneEnd},
		{"primary match window two", config.PrimaryMatchTwoStart, config.PrimaryMatchTwoEnd},
	}
	for _, p := range phases {
		if p.start > p.end {
			return fmt.Errorf("%s: start year %d is after end year %d", p.name, p.start, p.end)
		}
	}

	// Primary phases must not overlap; they run in configuration order.
	ordered := phases[:4]
	for i := 0; i < len(ordered)-1; i++ {
		if ordered[i].end >= ordered[i+1].start {
			return fmt.Errorf("%s overlaps %s", ordered[i].name, ordered[i+1].name)
		}
	}

	if config.ResumedTenureCredit < 0 {
		return fmt.Errorf("resumed tenure credit cannot be negative")
	}
	if config.TerminalSalary.LessThan(decimal.Zero) || config.TransitionSalary.LessThan(decimal.Zero) {
		return fmt.Errorf("phase salaries cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateRate(name string, rate decimal.Decimal) error {
	// Rates are fractions; anything at or past ±100% a year is a typo.
	one := decimal.NewFromInt(1)
	if rate.GreaterThanOrEqual(one) || rate.LessThanOrEqual(one.Neg()) {
		return fmt.Errorf("%s must be a fraction between -1 and 1 exclusive", name)
	}
	return nil
}
