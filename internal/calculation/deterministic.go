package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/rpgo/enoughcalc/internal/domain"
)

// ErrInvalidInputs wraps every precondition failure raised by the engine.
var ErrInvalidInputs = errors.New("invalid retirement inputs")

// checkPreconditions enforces what the closed-form formulas divide or discount by.
func checkPreconditions(in domain.RetirementInputs) error {
	var errs domain.ValidationErrors
	if in.InitialWR <= 0 {
		errs.Add("initialWR", "initial withdrawal rate must be positive, got %g", in.InitialWR)
	}
	if in.CurrentAssets < 0 {
		errs.Add("currentAssets", "current assets cannot be negative, got %g", in.CurrentAssets)
	}
	if in.AnnualSpend <= 0 {
		errs.Add("annualSpend", "annual spend must be positive, got %g", in.AnnualSpend)
	}
	if in.RetireAge <= in.CurrentAge {
		errs.Add("retireAge", "retirement age (%d) must be after current age (%d)", in.RetireAge, in.CurrentAge)
	}
	if in.PlanToAge <= in.RetireAge {
		errs.Add("planToAge", "plan-to age (%d) must be after retirement age (%d)", in.PlanToAge, in.RetireAge)
	}
	if err := errs.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInputs, err)
	}
	return nil
}

// AverageRetirementIncome is the mean payment over the years each source is
// active within the retirement horizon, weighted by those years.
func AverageRetirementIncome(in domain.RetirementInputs) float64 {
	horizon := in.YearsInRetirement()
	var totalYears, weighted float64
	for _, src := range in.Incomes {
		start := max(0, src.StartAge-in.RetireAge)
		end := min(horizon, src.LastAge(in.PlanToAge)-in.RetireAge)
		active := float64(max(0, end-start))
		totalYears += active
		weighted += src.AmountAnnual * active
	}
	return weighted / math.Max(1, totalYears)
}

// YearsToFI solves assets*(1+r)^n growth toward the gap. Degenerate cases yield 0.
func YearsToFI(gapToGoal, currentAssets, meanReturn float64) float64 {
	if gapToGoal <= 0 || currentAssets <= 0 || meanReturn == 0 {
		return 0
	}
	years := math.Log(1+gapToGoal*meanReturn/currentAssets) / math.Log(1+meanReturn)
	if math.IsNaN(years) || math.IsInf(years, 0) {
		return 0
	}
	return years
}

// ComputeDeterministic computes the enough number and the expected-return cashflow table.
func ComputeDeterministic(in domain.RetirementInputs) (*domain.DeterministicResult, error) {
	if err := checkPreconditions(in); err != nil {
		return nil, err
	}

	avgIncome := AverageRetirementIncome(in)
	netSpend := in.AnnualSpend - avgIncome
	atRetire := netSpend / in.InitialWR
	today := atRetire / math.Pow(1+in.MeanReturn, float64(in.YearsToRetire()))
	gap := today - in.CurrentAssets

	projection := NewPathProjector(in).Project(ExpectedRatesFrom(in), false)

	return &domain.DeterministicResult{
		EnoughNumberToday:    today,
		EnoughNumberAtRetire: atRetire,
		AverageAnnualIncome:  avgIncome,
		GapToGoal:            gap,
		YearsToFI:            YearsToFI(gap, in.CurrentAssets, in.MeanReturn),
		CashflowTable:        projection.Rows,
	}, nil
}
