package main

import (
	"github.com/spf13/cobra"

	"github.com/fireplan/fire-calculator/internal/output"
)

var accumulateCmd = &cobra.Command{
	Use:   "accumulate",
	Short: "Estimate the readiness-year distribution under randomized returns",
	RunE:  runAccumulate,
}

func init() {
	rootCmd.AddCommand(accumulateCmd)
}

func runAccumulate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	result, err := newEngine().RunAccumulation(cfg, simulationSettings())
	if err != nil {
		return err
	}

	return render(&output.Report{Accumulation: result})
}
