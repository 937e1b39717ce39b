package calculation

import (
	"math"
	"math/rand"
	"time"
)

// seedFunc returns a pseudo-random seed (override for deterministic Monte Carlo tests).
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc overrides the seed provider (use only in tests).
func SetSeedFunc(f func() int64) { seedFunc = f }

// ReturnSource produces one annual return fraction per call. Each Monte
// Carlo trial owns its own source, so trials never share random state.
type ReturnSource interface {
	Draw() float64
}

// LognormalSource draws parametric lognormal annual returns from an
// arithmetic mean and volatility, both expressed as percentages.
type LognormalSource struct {
	MeanPct       float64
	VolatilityPct float64
	rng           *rand.Rand
}

// NewLognormalSource creates a seeded parametric return source.
func NewLognormalSource(meanPct, volatilityPct float64, seed int64) *LognormalSource {
	return &LognormalSource{
		MeanPct:       meanPct,
		VolatilityPct: volatilityPct,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// Draw returns exp(ln(1+mu) - sigma^2/2 + sigma*z) - 1, which is always
// strictly greater than -1: a single year can never wipe out more than the
// whole portfolio.
func (s *LognormalSource) Draw() float64 {
	mu := s.MeanPct / 100
	sigma := s.VolatilityPct / 100

	z := s.normal()
	logMean := math.Log(1+mu) - 0.5*sigma*sigma
	return math.Exp(logMean+sigma*z) - 1
}

// normal draws a standard normal variate via the Box-Muller transform,
// rejecting u1 == 0 to avoid the logarithm singularity.
func (s *LognormalSource) normal() float64 {
	u1 := s.rng.Float64()
	for u1 == 0 {
		u1 = s.rng.Float64()
	}
	u2 := s.rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// BootstrapSource is a caller-owned sampling session over the embedded
// historical annual-return table. A seeded session pre-draws its whole
// sequence up front, so the same seed always replays the same returns; the
// zero value falls back to an unseeded uniform table draw.
type BootstrapSource struct {
	sequence []float64
	cursor   int
}

// NewBootstrapSource pre-draws a reproducible with-replacement sequence of
// the given length from the historical table.
func NewBootstrapSource(seed int64, length int) *BootstrapSource {
	table := HistoricalReturns()
	rng := rand.New(rand.NewSource(seed))

	sequence := make([]float64, length)
	for i := range sequence {
		sequence[i] = table[rng.Intn(len(table))]
	}
	return &BootstrapSource{sequence: sequence}
}

// Draw returns the next return in the session's sequence, wrapping around
// when the sequence is exhausted. An uninitialized session draws uniformly
// from the table instead.
func (s *BootstrapSource) Draw() float64 {
	if s == nil || len(s.sequence) == 0 {
		table := HistoricalReturns()
		return table[rand.Intn(len(table))]
	}
	r := s.sequence[s.cursor]
	s.cursor = (s.cursor + 1) % len(s.sequence)
	return r
}

// Reset rewinds the session to the start of its sequence.
func (s *BootstrapSource) Reset() {
	s.cursor = 0
}

// Percentile computes the value at percentile p (0-100) from an ascending
// sorted sample using linear interpolation between the two nearest ranks
// under the midpoint convention (rank = p/100*n - 0.5), so the 25th
// percentile of [10,20,30,40,50] is 17.5. Returns 0 for an empty sample;
// p at or below 0 returns the minimum, p at or above 100 the maximum.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	rank := p/100*float64(len(sorted)) - 0.5
	if rank < 0 {
		rank = 0
	}
	if rank > float64(len(sorted)-1) {
		rank = float64(len(sorted) - 1)
	}
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}
