package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fireplan/fire-calculator/internal/output"
)

var flagVerboseYears bool

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run the deterministic year-by-year projection",
	RunE:  runProject,
}

func init() {
	projectCmd.Flags().BoolVar(&flagVerboseYears, "years", false, "Print every yearly snapshot")
	rootCmd.AddCommand(projectCmd)
}

func decimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func runProject(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	result, err := newEngine().RunProjection(cfg)
	if err != nil {
		return err
	}

	if err := render(&output.Report{Projection: result}); err != nil {
		return err
	}

	if flagVerboseYears {
		fmt.Printf("%-6s %-4s %14s %14s %14s %8s %8s\n",
			"Year", "Age", "Net Savings", "Portfolio", "Target", "Ready", "Deficit")
		for _, s := range result.Snapshots {
			fmt.Printf("%-6d %-4d %14s %14s %14s %8t %8t\n",
				s.Year, s.PrimaryAge,
				s.NetSavings.StringFixed(0),
				s.TotalPortfolio().StringFixed(0),
				s.TargetPortfolio.StringFixed(0),
				s.Ready, s.Deficit)
		}
	}

	return nil
}
