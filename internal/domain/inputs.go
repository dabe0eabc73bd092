package domain

import "math"

// IncomeSource is a named guaranteed cash inflow (pension, Social Security, annuity).
// It is active over [StartAge, EndAge] inclusive and grows at COLA compounded from StartAge.
type IncomeSource struct {
	Name         string  `yaml:"name" json:"name"`
	StartAge     int     `yaml:"start_age" json:"startAge"`
	EndAge       *int    `yaml:"end_age,omitempty" json:"endAge,omitempty"` // nil means plan-to age
	AmountAnnual float64 `yaml:"amount_annual" json:"amountAnnual"`
	COLA         float64 `yaml:"cola" json:"cola"`
}

// LastAge returns the final age the source pays, defaulting to planToAge.
func (s IncomeSource) LastAge(planToAge int) int {
	if s.EndAge == nil || *s.EndAge == 0 {
		return planToAge
	}
	return *s.EndAge
}

// IsActive reports whether the source pays at the given age.
func (s IncomeSource) IsActive(age, planToAge int) bool {
	return age >= s.StartAge && age <= s.LastAge(planToAge)
}

// AmountAt returns the nominal payment at age, or 0 when the source is inactive.
func (s IncomeSource) AmountAt(age, planToAge int) float64 {
	if !s.IsActive(age, planToAge) {
		return 0
	}
	return s.AmountAnnual * math.Pow(1+s.COLA, float64(age-s.StartAge))
}

// RetirementInputs is the validated input record for one calculation.
// All rates are fractional (0.04 = 4%).
type RetirementInputs struct {
	// Timing
	CurrentAge int `yaml:"current_age" json:"currentAge"`
	RetireAge  int `yaml:"retire_age" json:"retireAge"`
	PlanToAge  int `yaml:"plan_to_age" json:"planToAge"`

	// Spending (annual, today's dollars)
	AnnualSpend    float64 `yaml:"annual_spend" json:"annualSpend"`
	SpendInflation float64 `yaml:"spend_inflation" json:"spendInflation"`

	Incomes []IncomeSource `yaml:"incomes" json:"incomes"`

	// Assets and market assumptions
	CurrentAssets       float64 `yaml:"current_assets" json:"currentAssets"`
	MeanReturn          float64 `yaml:"mean_return" json:"meanReturn"`
	StdevReturn         float64 `yaml:"stdev_return" json:"stdevReturn"`
	MeanInflation       float64 `yaml:"mean_inflation" json:"meanInflation"`
	StdevInflation      float64 `yaml:"stdev_inflation" json:"stdevInflation"`
	CorrReturnInflation float64 `yaml:"corr_return_inflation" json:"corrReturnInflation"`

	// Withdrawal policy
	InitialWR      float64 `yaml:"initial_wr" json:"initialWR"`
	FloorWR        float64 `yaml:"floor_wr" json:"floorWR"`
	CapWR          float64 `yaml:"cap_wr" json:"capWR"`
	GuardrailDrop  float64 `yaml:"guardrail_drop" json:"guardrailDrop"`
	GuardrailRaise float64 `yaml:"guardrail_raise" json:"guardrailRaise"`

	CashBufferYears float64 `yaml:"cash_buffer_years" json:"cashBufferYears"`

	// Flat effective rate; applied by the presentation layer, never inside the engine.
	EffectiveTaxRate float64 `yaml:"effective_tax_rate" json:"effectiveTaxRate"`

	// Simulation
	Simulations int   `yaml:"simulations" json:"simulations"`
	Seed        int64 `yaml:"seed,omitempty" json:"seed,omitempty"`       // 0 picks a time-derived seed
	Workers     int   `yaml:"workers,omitempty" json:"workers,omitempty"` // 0 uses GOMAXPROCS
}

// YearsToRetire is the length of the growth phase.
func (in RetirementInputs) YearsToRetire() int { return in.RetireAge - in.CurrentAge }

// YearsInRetirement is planToAge - retireAge (the retirement phase spans one more row).
func (in RetirementInputs) YearsInRetirement() int { return in.PlanToAge - in.RetireAge }

// ProjectionLength is the number of YearRows a full path contains.
func (in RetirementInputs) ProjectionLength() int {
	return in.YearsToRetire() + in.YearsInRetirement() + 1
}

// CashBufferTarget is the cash bucket size in nominal dollars of the original spend.
func (in RetirementInputs) CashBufferTarget() float64 {
	return in.CashBufferYears * in.AnnualSpend
}

// IncomeAt sums every active income source at the given age.
func (in RetirementInputs) IncomeAt(age int) float64 {
	var total float64
	for _, src := range in.Incomes {
		total += src.AmountAt(age, in.PlanToAge)
	}
	return total
}

// Clone returns a deep copy so builders never share the Incomes backing array.
func (in RetirementInputs) Clone() RetirementInputs {
	out := in
	if in.Incomes != nil {
		out.Incomes = make([]IncomeSource, len(in.Incomes))
		for i, src := range in.Incomes {
			if src.EndAge != nil {
				end := *src.EndAge
				src.EndAge = &end
			}
			out.Incomes[i] = src
		}
	}
	return out
}

// DefaultInputs returns the reference household used by the calculator form.
func DefaultInputs() RetirementInputs {
	return RetirementInputs{
		CurrentAge:     42,
		RetireAge:      60,
		PlanToAge:      95,
		AnnualSpend:    180000,
		SpendInflation: 0.025,
		Incomes: []IncomeSource{
			{Name: "Social Security", StartAge: 67, AmountAnnual: 48000, COLA: 0.025},
		},
		CurrentAssets:       2000000,
		MeanReturn:          0.065,
		StdevReturn:         0.12,
		MeanInflation:       0.025,
		StdevInflation:      0.01,
		CorrReturnInflation: -0.2,
		InitialWR:           0.04,
		FloorWR:             0.03,
		CapWR:               0.06,
		GuardrailDrop:       0.1,
		GuardrailRaise:      0.05,
		CashBufferYears:     2,
		EffectiveTaxRate:    0.18,
		Simulations:         1000,
	}
}
