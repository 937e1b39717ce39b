package calculation

import (
	"fmt"

	"github.com/fireplan/fire-calculator/internal/domain"
	dec "github.com/fireplan/fire-calculator/pkg/decimal"
)

// Engine orchestrates the deterministic projection and the two Monte Carlo
// phases. It holds no per-run state, so a single Engine can serve any number
// of requests and repeated calls with the same inputs return identical
// results.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunProjection runs the deterministic forward pass.
func (e *Engine) RunProjection(cfg *domain.Configuration) (*domain.ProjectionResult, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	e.Logger.Infof("projecting %d years from %d", domain.ProjectionHorizonYears, cfg.StartYear)
	result := GenerateProjection(cfg)

	if result.FirstReadiness != nil {
		e.Logger.Infof("readiness reached in %d at age %d",
			result.FirstReadiness.Year, result.FirstReadiness.PrimaryAge)
	} else {
		e.Logger.Infof("readiness not reached within the horizon")
	}
	if result.EducationOverfunded {
		e.Logger.Warnf("education accounts hold a positive balance past the final cutoff year")
	}
	return result, nil
}

// RunAccumulation runs the accumulation Monte Carlo.
func (e *Engine) RunAccumulation(cfg *domain.Configuration, settings *domain.SimulationSettings) (*domain.AccumulationResult, error) {
	if cfg == nil || settings == nil {
		return nil, fmt.Errorf("configuration and simulation settings are required")
	}
	if settings.Trials <= 0 {
		return nil, fmt.Errorf("trial count must be positive, got %d", settings.Trials)
	}
	if !settings.UseHistorical && settings.VolatilityPct.IsNegative() {
		return nil, fmt.Errorf("volatility must not be negative")
	}

	e.Logger.Infof("running %d accumulation trials", settings.Trials)
	result := RunAccumulation(cfg, settings)
	e.Logger.Infof("accumulation: %d of %d trials reached the target", result.SuccessCount, result.Trials)
	return result, nil
}

// RunWithdrawal runs the withdrawal Monte Carlo from the given retirement
// year and starting portfolio.
func (e *Engine) RunWithdrawal(cfg *domain.Configuration, settings *domain.SimulationSettings, retirementYear int, startingPortfolio dec.Money) (*domain.WithdrawalResult, error) {
	if cfg == nil || settings == nil {
		return nil, fmt.Errorf("configuration and simulation settings are required")
	}
	if settings.Trials <= 0 {
		return nil, fmt.Errorf("trial count must be positive, got %d", settings.Trials)
	}
	if startingPortfolio.IsNegative() {
		return nil, fmt.Errorf("starting portfolio must not be negative")
	}
	if settings.HorizonEndAge <= 0 {
		return nil, fmt.Errorf("horizon end age must be positive, got %d", settings.HorizonEndAge)
	}

	e.Logger.Infof("running %d withdrawal trials from %d", settings.Trials, retirementYear)
	result, err := RunWithdrawal(cfg, settings, retirementYear, startingPortfolio)
	if err != nil {
		return nil, fmt.Errorf("withdrawal simulation: %w", err)
	}
	e.Logger.Infof("withdrawal: survival probability %s", result.SurvivalProbability.StringFixed(4))
	return result, nil
}
