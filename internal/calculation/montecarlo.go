package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fireplan/fire-calculator/internal/domain"
	dec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// crossingPercentiles is the fixed ladder reported by every accumulation run.
var crossingPercentiles = []int{10, 25, 50, 75, 90}

// newReturnSource builds one trial's return stream: a seeded historical
// bootstrap when requested, otherwise a parametric lognormal source. Each
// trial draws two returns per simulated year, one per account.
func newReturnSource(settings *domain.SimulationSettings, seed int64) ReturnSource {
	if settings.UseHistorical {
		return NewBootstrapSource(seed, 2*domain.ProjectionHorizonYears)
	}
	return NewLognormalSource(
		settings.MeanReturnPct.InexactFloat64(),
		settings.VolatilityPct.InexactFloat64(),
		seed,
	)
}

// RunAccumulation replays the deterministic contribution and target schedule
// under randomized returns. Each trial walks the same per-year contributions
// the deterministic pass produced, substitutes drawn returns for the fixed
// growth rates, and records the first year the combined portfolio met that
// year's target. The configuration must already be validated.
func RunAccumulation(cfg *domain.Configuration, settings *domain.SimulationSettings) *domain.AccumulationResult {
	base := GenerateProjection(cfg)
	schedule := base.Snapshots

	baseSeed := settings.Seed
	if baseSeed == 0 {
		baseSeed = seedFunc()
	}

	samples := make([]domain.SimulationSample, settings.Trials)
	crossedByYear := make([]int, len(schedule))
	successes := 0

	for trial := 0; trial < settings.Trials; trial++ {
		source := newReturnSource(settings, baseSeed+int64(trial))

		taxDeferred := dec.NewMoneyFromDecimal(cfg.StartingTaxDeferred)
		taxable := dec.NewMoneyFromDecimal(cfg.StartingTaxable)

		for i, snapshot := range schedule {
			r1 := decimal.NewFromFloat(source.Draw())
			r2 := decimal.NewFromFloat(source.Draw())

			taxDeferred = taxDeferred.Add(snapshot.TaxDeferredContribution).Grow(r1)
			taxable = taxable.Add(snapshot.TaxableContribution).Grow(r2).ClampMin(dec.Zero())

			combined := taxDeferred.Add(taxable)
			if combined.GreaterThanOrEqual(snapshot.TargetPortfolio) {
				year := snapshot.Year
				age := snapshot.PrimaryAge
				portfolio := combined
				samples[trial] = domain.SimulationSample{
					CrossingYear:      &year,
					CrossingAge:       &age,
					CrossingPortfolio: &portfolio,
				}
				crossedByYear[i]++
				successes++
				break
			}
		}
	}

	curve := readinessCurve(schedule, crossedByYear, settings.Trials)

	return &domain.AccumulationResult{
		Trials:         settings.Trials,
		SuccessCount:   successes,
		Samples:        samples,
		ReadinessCurve: curve,
		Percentiles:    crossingStatistics(samples, curve),
	}
}

// readinessCurve accumulates the per-year crossing counts into the fraction
// of all trials that had crossed by each calendar year.
func readinessCurve(schedule []domain.YearlySnapshot, crossedByYear []int, trials int) []domain.ReadinessPoint {
	curve := make([]domain.ReadinessPoint, len(schedule))
	running := 0
	for i, snapshot := range schedule {
		running += crossedByYear[i]
		probability := dec.Zero()
		if trials > 0 {
			probability = dec.NewMoneyFromInt(int64(running)).
				Div(decimal.NewFromInt(int64(trials)))
		}
		curve[i] = domain.ReadinessPoint{Year: snapshot.Year, Probability: probability}
	}
	return curve
}

// crossingStatistics reads the fixed percentile ladder off the trials that
// did cross, ranked by crossing year. A percentile resolves only when the
// success fraction reaches it: with 40% of trials crossing, p50 and above
// report nil fields because no year covers that share of trials.
func crossingStatistics(samples []domain.SimulationSample, curve []domain.ReadinessPoint) []domain.PercentileCrossing {
	crossed := make([]domain.SimulationSample, 0, len(samples))
	for _, s := range samples {
		if s.Crossed() {
			crossed = append(crossed, s)
		}
	}
	sort.SliceStable(crossed, func(i, j int) bool {
		return *crossed[i].CrossingYear < *crossed[j].CrossingYear
	})

	out := make([]domain.PercentileCrossing, 0, len(crossingPercentiles))
	for _, p := range crossingPercentiles {
		crossing := domain.PercentileCrossing{Percentile: p}
		if len(crossed) > 0 && len(crossed)*100 >= p*len(samples) {
			idx := (p*(len(crossed)-1) + 50) / 100
			sample := crossed[idx]

			year := *sample.CrossingYear
			age := *sample.CrossingAge
			portfolio := *sample.CrossingPortfolio
			crossing.Year = &year
			crossing.Age = &age
			crossing.Portfolio = &portfolio
			crossing.ReadinessProbability = curveValueAtOrAfter(curve, year)
		}
		out = append(out, crossing)
	}
	return out
}

// curveValueAtOrAfter snaps a calendar year to the first readiness bucket at
// or after it.
func curveValueAtOrAfter(curve []domain.ReadinessPoint, year int) *dec.Money {
	for _, point := range curve {
		if point.Year >= year {
			probability := point.Probability
			return &probability
		}
	}
	if len(curve) == 0 {
		return nil
	}
	probability := curve[len(curve)-1].Probability
	return &probability
}
