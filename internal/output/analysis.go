package output

import (
	"math"

	"github.com/rpgo/enoughcalc/internal/domain"
	money "github.com/rpgo/enoughcalc/pkg/decimal"
)

// Rating thresholds on success probability.
const (
	strongThreshold   = 0.8
	moderateThreshold = 0.6
)

// Assessment is the plain-language reading of one calculation.
type Assessment struct {
	Rating         string
	Advice         string
	GapStatus      string
	YearsToFI      int
	AfterTaxSpend  string
	FinalPortfolio float64
}

// Assess derives the headline judgements shown next to the numbers.
// Tax is applied here, outside the engine, as a flat effective rate.
func Assess(results *domain.CalculationResults) Assessment {
	p := results.MonteCarlo.SuccessProbability
	a := Assessment{}
	switch {
	case p > strongThreshold:
		a.Rating = "Excellent"
		a.Advice = "Your retirement plan looks strong! Consider increasing spending or retiring earlier."
	case p > moderateThreshold:
		a.Rating = "Good"
		a.Advice = "Your plan has moderate risk. Consider saving more or retiring later."
	default:
		a.Rating = "Needs attention"
		a.Advice = "Your plan needs attention. Consider increasing savings or adjusting retirement age."
	}

	if results.Deterministic.Shortfall() {
		a.GapStatus = "Need to save more"
	} else {
		a.GapStatus = "On track!"
	}

	if results.Deterministic.YearsToFI > 0 {
		a.YearsToFI = int(math.Ceil(results.Deterministic.YearsToFI))
	}

	a.AfterTaxSpend = money.NewMoney(results.Inputs.AnnualSpend).AfterTax(results.Inputs.EffectiveTaxRate).Format()
	if last, ok := results.Deterministic.FinalRow(); ok {
		a.FinalPortfolio = last.TotalBalance()
	}
	return a
}
