package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVSummarizer implements the yearly summary CSV output (one row per
// projected year).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "PrimaryAge", "GrossIncome", "TotalTax", "LivingExpenses", "NetSavings", "TaxDeferredBalance", "TaxableBalance", "TargetPortfolio", "Ready", "Deficit"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	if report.Projection != nil {
		for _, s := range report.Projection.Snapshots {
			row := []string{
				strconv.Itoa(s.Year),
				strconv.Itoa(s.PrimaryAge),
				s.GrossIncome.StringFixed(2),
				s.TotalTax.StringFixed(2),
				s.LivingExpenses.StringFixed(2),
				s.NetSavings.StringFixed(2),
				s.TaxDeferredBalance.StringFixed(2),
				s.TaxableBalance.StringFixed(2),
				s.TargetPortfolio.StringFixed(2),
				strconv.FormatBool(s.Ready),
				strconv.FormatBool(s.Deficit),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
