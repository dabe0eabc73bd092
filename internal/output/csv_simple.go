package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/rpgo/enoughcalc/internal/domain"
)

// CSVSummarizer writes one Metric,Value,Description row per headline number.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.CalculationResults) ([]byte, error) {
	det := results.Deterministic
	mc := results.MonteCarlo
	worst := ""
	if mc.WorstPathDepletionAge != nil {
		worst = intToString(*mc.WorstPathDepletionAge)
	}

	rows := [][]string{
		{"Metric", "Value", "Description"},
		{"EnoughNumberToday", cents(det.EnoughNumberToday), "Assets needed today to fund retirement spending"},
		{"EnoughNumberAtRetire", cents(det.EnoughNumberAtRetire), "Assets needed at the retirement age"},
		{"GapToGoal", cents(det.GapToGoal), "Enough number today minus current assets (positive = shortfall)"},
		{"YearsToFI", fmt.Sprintf("%.2f", det.YearsToFI), "Years of compound growth until the gap closes"},
		{"SuccessProbability", rateString(mc.SuccessProbability), "Fraction of simulated paths that never depleted"},
		{"Simulations", intToString(mc.Simulations), "Total number of simulated paths"},
		{"DepletedPaths", intToString(mc.DepletedPaths), "Paths where portfolio and cash buffer ran out"},
		{"WorstPathDepletionAge", worst, "Earliest depletion age across all paths"},
		{"Percentile5", cents(mc.Percentile5), "5th percentile ending balance of surviving paths"},
		{"Percentile25", cents(mc.Percentile25), "25th percentile ending balance of surviving paths"},
		{"Median", cents(mc.MedianEndingBalance), "Median ending balance of surviving paths"},
		{"Percentile75", cents(mc.Percentile75), "75th percentile ending balance of surviving paths"},
		{"Percentile95", cents(mc.Percentile95), "95th percentile ending balance of surviving paths"},
		{"Average", cents(mc.AverageEndingBalance), "Mean ending balance of surviving paths"},
		{"Min", cents(mc.MinEndingBalance), "Lowest ending balance of surviving paths"},
		{"Max", cents(mc.MaxEndingBalance), "Highest ending balance of surviving paths"},
		{"Seed", fmt.Sprintf("%d", results.Seed), "Base seed of the random streams"},
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
