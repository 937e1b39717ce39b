package calculation

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
	"github.com/fireplan/fire-calculator/pkg/dateutil"
	dec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// defaultDepletionFloor marks a trial depleted once its combined balance
// falls below this absolute amount.
var defaultDepletionFloor = decimal.NewFromInt(1000)

// grossUpIterations fixes how many times the withdrawal is re-estimated to
// cover its own tax.
const grossUpIterations = 3

// RunWithdrawal simulates drawing down a portfolio from the given retirement
// year until the primary earner reaches the configured horizon end age. The
// tax-deferred share of the starting portfolio comes from the deterministic
// snapshot at the retirement year; when that snapshot holds no assets the
// configured fallback ratio applies instead.
func RunWithdrawal(cfg *domain.Configuration, settings *domain.SimulationSettings, retirementYear int, startingPortfolio dec.Money) (*domain.WithdrawalResult, error) {
	lastYear := cfg.StartYear + domain.ProjectionHorizonYears - 1
	if retirementYear < cfg.StartYear || retirementYear > lastYear {
		return nil, fmt.Errorf("retirement year %d outside projection horizon %d-%d",
			retirementYear, cfg.StartYear, lastYear)
	}

	endYear := dateutil.YearForAge(cfg.PrimaryBirthYear, settings.HorizonEndAge)
	if endYear < retirementYear {
		return nil, fmt.Errorf("horizon end age %d is reached in %d, before retirement year %d",
			settings.HorizonEndAge, endYear, retirementYear)
	}
	years := endYear - retirementYear + 1

	deferredRatio := deferredSplitRatio(cfg, settings, retirementYear)
	floor := settings.DepletionFloor
	if floor.IsZero() {
		floor = defaultDepletionFloor
	}
	depletionFloor := dec.NewMoneyFromDecimal(floor)

	baseSeed := settings.Seed
	if baseSeed == 0 {
		baseSeed = seedFunc()
	}

	trajectories := make([]domain.SimulationTrajectory, settings.Trials)
	depletionYears := make([]int, 0, settings.Trials)

	for trial := 0; trial < settings.Trials; trial++ {
		source := newReturnSource(settings, baseSeed+int64(trial))
		trajectories[trial] = runWithdrawalTrial(
			cfg, settings, source, retirementYear, years, startingPortfolio, deferredRatio, depletionFloor)
		if trajectories[trial].Depleted {
			depletionYears = append(depletionYears, *trajectories[trial].DepletionYear)
		}
	}

	depleted := len(depletionYears)
	survival := dec.Zero()
	depletion := dec.Zero()
	if settings.Trials > 0 {
		total := decimal.NewFromInt(int64(settings.Trials))
		survival = dec.NewMoneyFromInt(int64(settings.Trials - depleted)).Div(total)
		depletion = dec.NewMoneyFromInt(int64(depleted)).Div(total)
	}

	return &domain.WithdrawalResult{
		Trials:               settings.Trials,
		SurvivalProbability:  survival,
		DepletionProbability: depletion,
		MedianDepletionYear:  medianYear(depletionYears),
		PercentileTable:      balancePercentileTable(trajectories, retirementYear, years),
		Trajectories:         trajectories,
	}, nil
}

// deferredSplitRatio reads the tax-deferred fraction off the deterministic
// snapshot at the retirement year, falling back to the configured ratio when
// that snapshot holds nothing.
func deferredSplitRatio(cfg *domain.Configuration, settings *domain.SimulationSettings, retirementYear int) decimal.Decimal {
	base := GenerateProjection(cfg)
	snapshot := base.Snapshots[retirementYear-cfg.StartYear]

	total := snapshot.TotalPortfolio()
	if !total.IsPositive() {
		return settings.FallbackDeferredRatio
	}
	return snapshot.TaxDeferredBalance.Decimal.Div(total.Decimal)
}

// runWithdrawalTrial walks one trial from retirement to the horizon end.
// Depletion latches: once the combined balance drops below the floor the
// trial stays depleted, though balances keep evolving for the percentile
// table.
func runWithdrawalTrial(
	cfg *domain.Configuration,
	settings *domain.SimulationSettings,
	source ReturnSource,
	retirementYear, years int,
	startingPortfolio dec.Money,
	deferredRatio decimal.Decimal,
	depletionFloor dec.Money,
) domain.SimulationTrajectory {
	taxDeferred := startingPortfolio.Mul(deferredRatio)
	taxable := startingPortfolio.Sub(taxDeferred)

	trajectory := domain.SimulationTrajectory{Balances: make([]dec.Money, years)}

	for i := 0; i < years; i++ {
		year := retirementYear + i

		r1 := decimal.NewFromFloat(source.Draw())
		r2 := decimal.NewFromFloat(source.Draw())
		taxDeferred = taxDeferred.Grow(r1).ClampMin(dec.Zero())
		taxable = taxable.Grow(r2).ClampMin(dec.Zero())

		rentalCash, _ := RentalForYear(cfg, year)
		need := LivingExpensesForYear(cfg, year).
			Sub(rentalCash).
			Sub(SocialSecurityForYear(cfg, year)).
			ClampMin(dec.Zero())

		if need.IsPositive() {
			withdrawal := grossUpWithdrawal(need, taxable, settings.LTCGRate, settings.OrdinaryRate)

			fromTaxable := dec.Min(withdrawal, taxable)
			taxable = taxable.Sub(fromTaxable)
			taxDeferred = taxDeferred.Sub(withdrawal.Sub(fromTaxable)).ClampMin(dec.Zero())
		}

		combined := taxDeferred.Add(taxable)
		trajectory.Balances[i] = combined

		if !trajectory.Depleted && combined.LessThan(depletionFloor) {
			y := year
			trajectory.Depleted = true
			trajectory.DepletionYear = &y
		}
	}

	return trajectory
}

// grossUpWithdrawal re-estimates the withdrawal a fixed number of times so
// it covers both the net need and the tax on itself: the taxable-account
// share bears the long-term-gains rate, any tax-deferred share the flat
// ordinary rate.
func grossUpWithdrawal(need, taxableBalance dec.Money, ltcgRate, ordinaryRate decimal.Decimal) dec.Money {
	withdrawal := need
	for i := 0; i < grossUpIterations; i++ {
		fromTaxable := dec.Min(withdrawal, taxableBalance)
		fromDeferred := withdrawal.Sub(fromTaxable)

		tax := fromTaxable.Mul(ltcgRate).Add(fromDeferred.Mul(ordinaryRate))
		withdrawal = need.Add(tax)
	}
	return withdrawal
}

// medianYear is the middle element of the sorted depletion years, nil for an
// empty set. Even-sized sets take the earlier of the two middle years so the
// result is always an actual depletion year.
func medianYear(years []int) *int {
	if len(years) == 0 {
		return nil
	}
	sorted := make([]int, len(years))
	copy(sorted, years)
	sort.Ints(sorted)
	median := sorted[(len(sorted)-1)/2]
	return &median
}

// balancePercentileTable computes the year-indexed portfolio percentile rows
// across all trials.
func balancePercentileTable(trajectories []domain.SimulationTrajectory, retirementYear, years int) []domain.YearPercentiles {
	table := make([]domain.YearPercentiles, years)

	values := make([]float64, len(trajectories))
	for i := 0; i < years; i++ {
		for t, trajectory := range trajectories {
			values[t], _ = trajectory.Balances[i].Float64()
		}
		sort.Float64s(values)

		table[i] = domain.YearPercentiles{
			Year: retirementYear + i,
			P10:  dec.NewMoney(Percentile(values, 10)),
			P25:  dec.NewMoney(Percentile(values, 25)),
			P50:  dec.NewMoney(Percentile(values, 50)),
			P75:  dec.NewMoney(Percentile(values, 75)),
			P90:  dec.NewMoney(Percentile(values, 90)),
		}
	}
	return table
}
