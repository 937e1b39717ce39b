package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fireplan/fire-calculator/internal/calculation"
	"github.com/fireplan/fire-calculator/internal/config"
	"github.com/fireplan/fire-calculator/internal/domain"
	"github.com/fireplan/fire-calculator/internal/output"
)

var (
	flagConfig        string
	flagTrials        int
	flagMeanPct       float64
	flagVolatilityPct float64
	flagHistorical    bool
	flagSeed          int64
	flagFormat        string
	flagOutFile       bool
)

var rootCmd = &cobra.Command{
	Use:   "fireplan",
	Short: "Household FIRE projection and Monte Carlo simulation",
	Long: "Projects a household's finances over a 62-year horizon and quantifies\n" +
		"readiness and withdrawal survival under randomized market returns.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "fireplan.yaml", "Household configuration file")
	rootCmd.PersistentFlags().IntVarP(&flagTrials, "trials", "n", 1000, "Monte Carlo trial count")
	rootCmd.PersistentFlags().Float64Var(&flagMeanPct, "mean", 7.0, "Mean annual return (percent)")
	rootCmd.PersistentFlags().Float64Var(&flagVolatilityPct, "volatility", 15.0, "Annual return volatility (percent)")
	rootCmd.PersistentFlags().BoolVar(&flagHistorical, "historical", false, "Bootstrap returns from the historical table instead of the parametric model")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Random seed (0 picks one)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "console", "Output format: console, csv, json")
	rootCmd.PersistentFlags().BoolVar(&flagOutFile, "write", false, "Write the report to a timestamped file instead of stdout")
}

// render formats a report per the global flags and prints it or writes a file.
func render(report *output.Report) error {
	formatter := output.GetFormatterByName(flagFormat)
	if formatter == nil {
		return fmt.Errorf("unknown format %q, available: %v", flagFormat, output.AvailableFormatterNames())
	}

	if flagOutFile {
		filename, err := output.WriteFormatted(formatter, report, output.NormalizeFormatName(flagFormat))
		if err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", filename)
		return nil
	}

	data, err := formatter.Format(report)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

// loadConfiguration is the shared loading path used by all commands.
func loadConfiguration() (*domain.Configuration, error) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", flagConfig, err)
	}
	return cfg, nil
}

func simulationSettings() *domain.SimulationSettings {
	return &domain.SimulationSettings{
		Trials:        flagTrials,
		MeanReturnPct: decimalFromFloat(flagMeanPct),
		VolatilityPct: decimalFromFloat(flagVolatilityPct),
		UseHistorical: flagHistorical,
		Seed:          flagSeed,
	}
}

func newEngine() *calculation.Engine {
	return calculation.NewEngine()
}
