package output

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatPercentage formats a decimal as a percentage with 1 decimal.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(1) + "%" }

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FIRE PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")

	if p := report.Projection; p != nil {
		if p.FirstReadiness != nil {
			fmt.Fprintf(&buf, "Readiness: %d (age %d), portfolio %s vs target %s\n",
				p.FirstReadiness.Year,
				p.FirstReadiness.PrimaryAge,
				FormatCurrency(p.FirstReadiness.TotalPortfolio().Decimal),
				FormatCurrency(p.FirstReadiness.TargetPortfolio.Decimal))
		} else {
			fmt.Fprintln(&buf, "Readiness: not reached within the horizon")
		}
		final := p.Snapshots[len(p.Snapshots)-1]
		fmt.Fprintf(&buf, "Final year %d: tax-deferred %s, taxable %s\n",
			final.Year,
			FormatCurrency(final.TaxDeferredBalance.Decimal),
			FormatCurrency(final.TaxableBalance.Decimal))
		if p.EducationOverfunded {
			fmt.Fprintln(&buf, "Warning: education accounts remain funded past the final cutoff year")
		}
	}

	if a := report.Accumulation; a != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Accumulation: %d/%d trials reached the target\n", a.SuccessCount, a.Trials)
		for _, pc := range a.Percentiles {
			if pc.Year == nil {
				fmt.Fprintf(&buf, "  p%d: never\n", pc.Percentile)
				continue
			}
			fmt.Fprintf(&buf, "  p%d: %d (age %d) %s, readiness %s\n",
				pc.Percentile, *pc.Year, *pc.Age,
				FormatCurrency(pc.Portfolio.Decimal),
				FormatPercentage(pc.ReadinessProbability.Decimal.Mul(hundred)))
		}
	}

	if w := report.Withdrawal; w != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Withdrawal: survival %s, depletion %s over %d trials\n",
			FormatPercentage(w.SurvivalProbability.Decimal.Mul(hundred)),
			FormatPercentage(w.DepletionProbability.Decimal.Mul(hundred)),
			w.Trials)
		if w.MedianDepletionYear != nil {
			fmt.Fprintf(&buf, "Median depletion year: %d\n", *w.MedianDepletionYear)
		}
	}

	return buf.Bytes(), nil
}
