package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/enoughcalc/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console-lite" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(results *domain.CalculationResults) ([]byte, error) {
	var buf bytes.Buffer
	det := results.Deterministic
	mc := results.MonteCarlo
	a := Assess(results)

	fmt.Fprintln(&buf, "RETIREMENT SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Enough Number (today): %s\n", FormatCompact(det.EnoughNumberToday))
	fmt.Fprintf(&buf, "Gap to Goal:           %s (%s)\n", FormatCompact(det.GapToGoal), a.GapStatus)
	fmt.Fprintf(&buf, "Success Probability:   %s (%s)\n", FormatPercentage(mc.SuccessProbability), a.Rating)
	fmt.Fprintf(&buf, "Years to FI:           %d\n", a.YearsToFI)
	fmt.Fprintf(&buf, "Median Ending Balance: %s\n", FormatCurrency(mc.MedianEndingBalance))
	return buf.Bytes(), nil
}
