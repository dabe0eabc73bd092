package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/enoughcalc/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report: assumptions,
// headline metrics, Monte Carlo distribution and the deterministic cashflow table.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(results *domain.CalculationResults) ([]byte, error) {
	var buf bytes.Buffer
	in := results.Inputs
	det := results.Deterministic
	mc := results.MonteCarlo
	a := Assess(results)

	rule := strings.Repeat("=", 81)
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "RETIREMENT ENOUGH-NUMBER AND MONTE CARLO ANALYSIS")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintf(&buf, "Ages: now %d, retire %d, plan to %d\n", in.CurrentAge, in.RetireAge, in.PlanToAge)
	fmt.Fprintf(&buf, "Annual spend: %s (%s after %s tax)\n", FormatCurrency(in.AnnualSpend), a.AfterTaxSpend, FormatPercentage(in.EffectiveTaxRate))
	fmt.Fprintf(&buf, "Current assets: %s\n", FormatCurrency(in.CurrentAssets))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, line := range GenerateAssumptions(in) {
		fmt.Fprintf(&buf, "• %s\n", line)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "ENOUGH NUMBER")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Average retirement income: %s\n", FormatCurrency(det.AverageAnnualIncome))
	fmt.Fprintf(&buf, "  Needed at retirement:      %s\n", FormatCurrency(det.EnoughNumberAtRetire))
	fmt.Fprintf(&buf, "  Needed today:              %s\n", FormatCurrency(det.EnoughNumberToday))
	fmt.Fprintf(&buf, "  Gap to goal:               %s (%s)\n", FormatCurrency(det.GapToGoal), a.GapStatus)
	fmt.Fprintf(&buf, "  Years to FI:               %d\n", a.YearsToFI)
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "MONTE CARLO (%d paths, seed %d)\n", mc.Simulations, results.Seed)
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Success probability: %s (%s)\n", FormatPercentage(mc.SuccessProbability), a.Rating)
	fmt.Fprintf(&buf, "  Depleted paths:      %d\n", mc.DepletedPaths)
	if mc.WorstPathDepletionAge != nil {
		fmt.Fprintf(&buf, "  Earliest depletion:  age %d\n", *mc.WorstPathDepletionAge)
	}
	fmt.Fprintf(&buf, "  5th percentile:      %s\n", FormatCurrency(mc.Percentile5))
	fmt.Fprintf(&buf, "  25th percentile:     %s\n", FormatCurrency(mc.Percentile25))
	fmt.Fprintf(&buf, "  Median:              %s\n", FormatCurrency(mc.MedianEndingBalance))
	fmt.Fprintf(&buf, "  75th percentile:     %s\n", FormatCurrency(mc.Percentile75))
	fmt.Fprintf(&buf, "  95th percentile:     %s\n", FormatCurrency(mc.Percentile95))
	fmt.Fprintf(&buf, "  Average:             %s\n", FormatCurrency(mc.AverageEndingBalance))
	fmt.Fprintf(&buf, "  Range:               %s to %s\n", FormatCurrency(mc.MinEndingBalance), FormatCurrency(mc.MaxEndingBalance))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, a.Advice)
	fmt.Fprintln(&buf)

	writeCashflowTable(&buf, det.CashflowTable)
	return buf.Bytes(), nil
}

func writeCashflowTable(w io.Writer, rows []domain.YearRow) {
	fmt.Fprintln(w, "DETERMINISTIC CASHFLOW")
	fmt.Fprintf(w, "%4s %4s %14s %14s %14s %16s %14s %7s\n", "Age", "Year", "Spend", "Income", "Withdrawal", "Portfolio", "Cash", "WR")
	for _, r := range rows {
		fmt.Fprintf(w, "%4d %4d %14s %14s %14s %16s %14s %7s\n",
			r.Age, r.Year,
			FormatCurrency(r.Spend), FormatCurrency(r.Income), FormatCurrency(r.Withdrawal),
			FormatCurrency(r.Portfolio), FormatCurrency(r.CashBucket), FormatPercentage(r.WithdrawalRate))
	}
}
