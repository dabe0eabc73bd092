package calculation

import (
	"math"

	"github.com/rpgo/enoughcalc/internal/domain"
)

// Guardrail bands relative to the portfolio value at retirement.
const (
	LowerGuardrail = 0.8
	UpperGuardrail = 1.2
)

// GuardrailPolicy cuts or raises the withdrawal when the portfolio leaves the
// [0.8, 1.2] band around its retirement value, then clamps to [floorWR, capWR].
type GuardrailPolicy struct {
	FloorWR        float64
	CapWR          float64
	GuardrailDrop  float64
	GuardrailRaise float64
}

// PolicyFrom builds the policy from an input record.
func PolicyFrom(in domain.RetirementInputs) GuardrailPolicy {
	return GuardrailPolicy{
		FloorWR:        in.FloorWR,
		CapWR:          in.CapWR,
		GuardrailDrop:  in.GuardrailDrop,
		GuardrailRaise: in.GuardrailRaise,
	}
}

// Apply returns the adjusted withdrawal for one retirement year.
// initialPortfolio is the value at the retirement boundary and stays fixed for the path.
func (g GuardrailPolicy) Apply(withdrawal, portfolio, initialPortfolio float64) float64 {
	adjusted := withdrawal
	if portfolio < initialPortfolio*LowerGuardrail {
		adjusted = withdrawal * (1 - g.GuardrailDrop)
	} else if portfolio > initialPortfolio*UpperGuardrail {
		adjusted = withdrawal * (1 + g.GuardrailRaise)
	}

	minWithdrawal := portfolio * g.FloorWR
	maxWithdrawal := portfolio * g.CapWR
	return math.Max(minWithdrawal, math.Min(maxWithdrawal, adjusted))
}

// ApplyGuardrails is the functional form of GuardrailPolicy.Apply.
func ApplyGuardrails(withdrawal, portfolio, initialPortfolio, floorWR, capWR, guardrailDrop, guardrailRaise float64) float64 {
	return GuardrailPolicy{
		FloorWR:        floorWR,
		CapWR:          capWR,
		GuardrailDrop:  guardrailDrop,
		GuardrailRaise: guardrailRaise,
	}.Apply(withdrawal, portfolio, initialPortfolio)
}

// WithdrawalRate is withdrawal / portfolio, or 0 for an empty portfolio.
func WithdrawalRate(withdrawal, portfolio float64) float64 {
	if portfolio <= 0 {
		return 0
	}
	return withdrawal / portfolio
}
