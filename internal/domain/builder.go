package domain

// InputsBuilder produces a new RetirementInputs value per Build call, replacing
// the form's partial-update pattern. The wrapped record is never shared.
type InputsBuilder struct {
	in RetirementInputs
}

// NewInputsBuilder starts from a copy of base.
func NewInputsBuilder(base RetirementInputs) *InputsBuilder {
	return &InputsBuilder{in: base.Clone()}
}

// Ages sets current, retirement and plan-to ages.
func (b *InputsBuilder) Ages(current, retire, planTo int) *InputsBuilder {
	b.in.CurrentAge, b.in.RetireAge, b.in.PlanToAge = current, retire, planTo
	return b
}

// Spend sets annual spend and its inflation rate.
func (b *InputsBuilder) Spend(annual, inflation float64) *InputsBuilder {
	b.in.AnnualSpend, b.in.SpendInflation = annual, inflation
	return b
}

// Assets sets current investable assets.
func (b *InputsBuilder) Assets(current float64) *InputsBuilder {
	b.in.CurrentAssets = current
	return b
}

// Returns sets the return distribution.
func (b *InputsBuilder) Returns(mean, stdev float64) *InputsBuilder {
	b.in.MeanReturn, b.in.StdevReturn = mean, stdev
	return b
}

// Inflation sets the inflation distribution and its correlation with returns.
func (b *InputsBuilder) Inflation(mean, stdev, corr float64) *InputsBuilder {
	b.in.MeanInflation, b.in.StdevInflation, b.in.CorrReturnInflation = mean, stdev, corr
	return b
}

// WithdrawalRates sets initial, floor and cap withdrawal rates.
func (b *InputsBuilder) WithdrawalRates(initial, floor, capRate float64) *InputsBuilder {
	b.in.InitialWR, b.in.FloorWR, b.in.CapWR = initial, floor, capRate
	return b
}

// Guardrails sets the cut and raise fractions.
func (b *InputsBuilder) Guardrails(drop, raise float64) *InputsBuilder {
	b.in.GuardrailDrop, b.in.GuardrailRaise = drop, raise
	return b
}

// CashBuffer sets the cash bucket size in years of spend.
func (b *InputsBuilder) CashBuffer(years float64) *InputsBuilder {
	b.in.CashBufferYears = years
	return b
}

// Incomes replaces the income list.
func (b *InputsBuilder) Incomes(sources ...IncomeSource) *InputsBuilder {
	b.in.Incomes = append([]IncomeSource(nil), sources...)
	return b
}

// AddIncome appends one income source.
func (b *InputsBuilder) AddIncome(src IncomeSource) *InputsBuilder {
	b.in.Incomes = append(b.in.Incomes, src)
	return b
}

// Simulation sets path count and seed.
func (b *InputsBuilder) Simulation(count int, seed int64) *InputsBuilder {
	b.in.Simulations, b.in.Seed = count, seed
	return b
}

// Workers sets the Monte Carlo worker count.
func (b *InputsBuilder) Workers(n int) *InputsBuilder {
	b.in.Workers = n
	return b
}

// TaxRate sets the flat effective tax rate.
func (b *InputsBuilder) TaxRate(rate float64) *InputsBuilder {
	b.in.EffectiveTaxRate = rate
	return b
}

// Build returns an independent copy of the accumulated record.
func (b *InputsBuilder) Build() RetirementInputs {
	return b.in.Clone()
}
