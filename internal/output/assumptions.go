package output

import (
	"fmt"

	"github.com/rpgo/enoughcalc/internal/domain"
)

// GenerateAssumptions lists the modeling assumptions behind a calculation.
func GenerateAssumptions(in domain.RetirementInputs) []string {
	lines := []string{
		fmt.Sprintf("Returns: mean %s, std dev %s", FormatPercentage(in.MeanReturn), FormatPercentage(in.StdevReturn)),
		fmt.Sprintf("Inflation: mean %s, std dev %s, correlation with returns %.2f", FormatPercentage(in.MeanInflation), FormatPercentage(in.StdevInflation), in.CorrReturnInflation),
		fmt.Sprintf("Deterministic spend inflation: %s annually", FormatPercentage(in.SpendInflation)),
		fmt.Sprintf("Withdrawal: initial %s, floor %s, cap %s", FormatPercentage(in.InitialWR), FormatPercentage(in.FloorWR), FormatPercentage(in.CapWR)),
		fmt.Sprintf("Guardrails: cut %s below 80%% of retirement portfolio, raise %s above 120%%", FormatPercentage(in.GuardrailDrop), FormatPercentage(in.GuardrailRaise)),
		fmt.Sprintf("Cash buffer: %.1f years of spend (%s)", in.CashBufferYears, FormatCurrency(in.CashBufferTarget())),
		fmt.Sprintf("Effective tax rate: %s (display only)", FormatPercentage(in.EffectiveTaxRate)),
	}
	for _, src := range in.Incomes {
		lines = append(lines, fmt.Sprintf("Income %q: %s/yr from age %d to %d, COLA %s",
			src.Name, FormatCurrency(src.AmountAnnual), src.StartAge, src.LastAge(in.PlanToAge), FormatPercentage(src.COLA)))
	}
	return lines
}
