package calculation

import (
	"github.com/fireplan/fire-calculator/internal/domain"
	"github.com/fireplan/fire-calculator/pkg/dateutil"
	dec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// CareerPhase tags the five mutually exclusive stages of the primary
// earner's timeline. Phase selection is a pure function of the calendar
// year against the configured, non-overlapping ranges.
type CareerPhase int

const (
	PhasePreCareer CareerPhase = iota
	PhaseFirstSegment
	PhaseTransition
	PhaseResumed
	PhaseTerminal
)

func (p CareerPhase) String() string {
	switch p {
	case PhaseFirstSegment:
		return "first_segment"
	case PhaseTransition:
		return "transition"
	case PhaseResumed:
		return "resumed"
	case PhaseTerminal:
		return "terminal"
	default:
		return "pre_career"
	}
}

// PhaseInfo is the variant tag plus its payload: the lockstep tenure for
// schedule-driven phases, zero otherwise.
type PhaseInfo struct {
	Phase  CareerPhase
	Tenure int
}

// lockstepSchedule is the fixed salary table keyed by tenure year.
var lockstepSchedule = []int64{
	125000, 135000, 145000, 160000,
	180000, 200000, 220000, 240000,
}

// PhaseForYear resolves the career phase active in the given year. Years
// outside every configured range (including gaps between phases) are
// pre-career: no wage income.
func PhaseForYear(cfg *domain.Configuration, year int) PhaseInfo {
	switch {
	case dateutil.InYearRange(year, cfg.FirstSegmentStart, cfg.FirstSegmentEnd):
		return PhaseInfo{Phase: PhaseFirstSegment, Tenure: year - cfg.FirstSegmentStart + 1}
	case dateutil.InYearRange(year, cfg.TransitionStart, cfg.TransitionEnd):
		return PhaseInfo{Phase: PhaseTransition}
	case dateutil.InYearRange(year, cfg.ResumedStart, cfg.ResumedEnd):
		// Resumed tenure carries the configured credit for the years
		// worked before the transition.
		return PhaseInfo{Phase: PhaseResumed, Tenure: year - cfg.ResumedStart + 1 + cfg.ResumedTenureCredit}
	case dateutil.InYearRange(year, cfg.TerminalStart, cfg.TerminalEnd):
		return PhaseInfo{Phase: PhaseTerminal}
	default:
		return PhaseInfo{Phase: PhasePreCareer}
	}
}

// LockstepSalary looks up the fixed schedule by tenure year. Tenure at or
// below zero clamps to the first tier; tenure beyond the table clamps to
// the last. There is no extrapolation and no error for out-of-range input.
func LockstepSalary(tenure int) dec.Money {
	if tenure < 1 {
		tenure = 1
	}
	if tenure > len(lockstepSchedule) {
		tenure = len(lockstepSchedule)
	}
	return dec.NewMoneyFromInt(lockstepSchedule[tenure-1])
}

// PrimarySalary resolves the primary earner's wage income for a year.
func PrimarySalary(cfg *domain.Configuration, year int) dec.Money {
	info := PhaseForYear(cfg, year)
	switch info.Phase {
	case PhaseFirstSegment, PhaseResumed:
		return LockstepSalary(info.Tenure)
	case PhaseTransition:
		return dec.NewMoneyFromDecimal(cfg.TransitionSalary)
	case PhaseTerminal:
		base := dec.NewMoneyFromDecimal(cfg.TerminalSalary)
		return base.CompoundGrowth(cfg.TerminalRaiseRate, year-cfg.TerminalStart)
	default:
		return dec.Zero()
	}
}

// SecondarySalary resolves the secondary earner's wage income: the base
// salary compounding at the growth rate from their start year, zero outside
// their employment range.
func SecondarySalary(cfg *domain.Configuration, year int) dec.Money {
	if !dateutil.InYearRange(year, cfg.SecondaryStart, cfg.SecondaryEnd) {
		return dec.Zero()
	}
	base := dec.NewMoneyFromDecimal(cfg.SecondarySalary)
	return base.CompoundGrowth(cfg.SecondaryGrowthRate, year-cfg.SecondaryStart)
}

// EmployerMatch computes the year's matching contribution. The secondary
// earner's match applies for any employed year; the primary's only inside
// the two configured windows.
func EmployerMatch(cfg *domain.Configuration, year int, primaryIncome, secondaryIncome dec.Money) dec.Money {
	match := dec.Zero()
	if primaryIncome.IsPositive() && primaryMatchActive(cfg, year) {
		match = match.Add(primaryIncome.Mul(cfg.MatchRate))
	}
	if secondaryIncome.IsPositive() {
		match = match.Add(secondaryIncome.Mul(cfg.MatchRate))
	}
	return match
}

func primaryMatchActive(cfg *domain.Configuration, year int) bool {
	return dateutil.InYearRange(year, cfg.PrimaryMatchOneStart, cfg.PrimaryMatchOneEnd) ||
		dateutil.InYearRange(year, cfg.PrimaryMatchTwoStart, cfg.PrimaryMatchTwoEnd)
}
