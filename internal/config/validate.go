package config

import (
	"fmt"
	"math"

	"github.com/rpgo/enoughcalc/internal/domain"
)

// MaxSimulations bounds the only unbounded cost knob of a calculation.
const MaxSimulations = 10000

// Validate checks every field and returns all problems at once as domain.ValidationErrors.
func Validate(in domain.RetirementInputs) error {
	var errs domain.ValidationErrors

	// Ages
	if in.CurrentAge < 18 || in.CurrentAge > 100 {
		errs.Add("currentAge", "current age must be between 18 and 100")
	}
	if in.RetireAge <= in.CurrentAge || in.RetireAge > 100 {
		errs.Add("retireAge", "retirement age must be after current age and under 100")
	}
	if in.PlanToAge <= in.RetireAge || in.PlanToAge > 120 {
		errs.Add("planToAge", "plan-to age must be after retirement age and under 120")
	}

	// Money
	if in.CurrentAssets < 0 {
		errs.Add("currentAssets", "current assets cannot be negative")
	}
	if in.AnnualSpend <= 0 {
		errs.Add("annualSpend", "annual spending must be positive")
	}

	// Market assumptions
	checkRange(&errs, "meanReturn", in.MeanReturn, -1, 1, false)
	checkRange(&errs, "stdevReturn", in.StdevReturn, 0, 1, true)
	checkRange(&errs, "spendInflation", in.SpendInflation, -0.5, 1, true)
	checkRange(&errs, "meanInflation", in.MeanInflation, -0.5, 1, true)
	checkRange(&errs, "stdevInflation", in.StdevInflation, 0, 1, true)
	checkRange(&errs, "corrReturnInflation", in.CorrReturnInflation, -1, 1, true)

	// Withdrawal policy
	checkRange(&errs, "initialWR", in.InitialWR, 0, 1, false)
	checkRange(&errs, "floorWR", in.FloorWR, 0, 1, true)
	checkRange(&errs, "capWR", in.CapWR, 0, 1, false)
	if in.FloorWR >= in.CapWR {
		errs.Add("floorWR", "floor withdrawal rate must be less than cap withdrawal rate")
	}
	checkRange(&errs, "guardrailDrop", in.GuardrailDrop, 0, 1, true)
	checkRange(&errs, "guardrailRaise", in.GuardrailRaise, 0, 1, true)

	checkRange(&errs, "cashBufferYears", in.CashBufferYears, 0, 10, true)
	checkRange(&errs, "effectiveTaxRate", in.EffectiveTaxRate, 0, 1, true)

	if in.Simulations < 1 || in.Simulations > MaxSimulations {
		errs.Add("simulations", "simulations must be between 1 and %d", MaxSimulations)
	}
	if in.Workers < 0 {
		errs.Add("workers", "workers cannot be negative")
	}

	for i, src := range in.Incomes {
		field := fmt.Sprintf("incomes[%d]", i)
		if src.Name == "" {
			errs.Add(field+".name", "income name is required")
		}
		if src.AmountAnnual < 0 {
			errs.Add(field+".amountAnnual", "income amount cannot be negative")
		}
		if src.StartAge < in.CurrentAge {
			errs.Add(field+".startAge", "income start age cannot be before current age")
		}
		if src.EndAge != nil && *src.EndAge != 0 && *src.EndAge < src.StartAge {
			errs.Add(field+".endAge", "income end age cannot be before start age")
		}
		checkRange(&errs, field+".cola", src.COLA, -0.5, 1, true)
	}

	return errs.Err()
}

// checkRange accepts (lo, hi] or, with inclusiveLow, [lo, hi]. NaN always fails.
func checkRange(errs *domain.ValidationErrors, field string, v, lo, hi float64, inclusiveLow bool) {
	low := v > lo
	if inclusiveLow {
		low = v >= lo
	}
	if math.IsNaN(v) || !low || v > hi {
		open := "("
		if inclusiveLow {
			open = "["
		}
		errs.Add(field, "must be in %s%g, %g], got %g", open, lo, hi, v)
	}
}

// Sanitize clamps every field into a computable range. It runs upstream of the
// engine, which never corrects inputs itself.
func Sanitize(in domain.RetirementInputs) domain.RetirementInputs {
	out := in.Clone()
	out.CurrentAssets = math.Max(0, in.CurrentAssets)
	out.AnnualSpend = math.Max(0.01, in.AnnualSpend)
	out.MeanReturn = clamp(in.MeanReturn, -0.99, 0.99)
	out.StdevReturn = clamp(in.StdevReturn, 0, 0.99)
	out.SpendInflation = clamp(in.SpendInflation, -0.5, 0.99)
	out.MeanInflation = clamp(in.MeanInflation, -0.5, 0.99)
	out.StdevInflation = clamp(in.StdevInflation, 0, 0.99)
	out.CorrReturnInflation = clamp(in.CorrReturnInflation, -1, 1)
	out.InitialWR = clamp(in.InitialWR, 0.001, 0.99)
	out.FloorWR = clamp(in.FloorWR, 0, 0.99)
	out.CapWR = clamp(in.CapWR, 0.001, 0.99)
	out.GuardrailDrop = clamp(in.GuardrailDrop, 0, 0.99)
	out.GuardrailRaise = clamp(in.GuardrailRaise, 0, 0.99)
	out.CashBufferYears = clamp(in.CashBufferYears, 0, 10)
	out.EffectiveTaxRate = clamp(in.EffectiveTaxRate, 0, 1)
	if out.Simulations > MaxSimulations {
		out.Simulations = MaxSimulations
	}

	for i := range out.Incomes {
		src := &out.Incomes[i]
		src.AmountAnnual = math.Max(0, src.AmountAnnual)
		src.StartAge = max(in.CurrentAge, src.StartAge)
		if src.EndAge != nil && *src.EndAge != 0 {
			end := max(src.StartAge, *src.EndAge)
			src.EndAge = &end
		}
		src.COLA = clamp(src.COLA, -0.5, 0.99)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
