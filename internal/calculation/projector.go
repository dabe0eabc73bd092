package calculation

import (
	"github.com/rpgo/enoughcalc/internal/domain"
)

// YearRates are the market rates applied to one projected year.
type YearRates struct {
	Return    float64
	Inflation float64
}

// RateSource yields the rates for each projected year in age order.
type RateSource interface {
	Next(age int) YearRates
}

// ExpectedRates returns the same rates every year. Spend inflates at the
// fixed spend-inflation input rather than expected market inflation.
type ExpectedRates struct {
	Rates YearRates
}

// ExpectedRatesFrom builds the deterministic rate source for an input record.
func ExpectedRatesFrom(in domain.RetirementInputs) ExpectedRates {
	return ExpectedRates{Rates: YearRates{Return: in.MeanReturn, Inflation: in.SpendInflation}}
}

func (e ExpectedRates) Next(int) YearRates { return e.Rates }

// RandomRates draws a fresh correlated pair every year from its own stream.
type RandomRates struct {
	Source Uniform
	Params DrawParams
}

func (r RandomRates) Next(int) YearRates {
	ret, infl := Draw(r.Source, r.Params)
	return YearRates{Return: ret, Inflation: infl}
}

// Projection is one completed path.
type Projection struct {
	Rows         []domain.YearRow
	Depleted     bool
	DepletionAge int
}

// Final returns the last emitted row.
func (p Projection) Final() domain.YearRow {
	if len(p.Rows) == 0 {
		return domain.YearRow{}
	}
	return p.Rows[len(p.Rows)-1]
}

// pathState threads through the fold; each step returns a new value.
type pathState struct {
	portfolio        float64
	cashBucket       float64
	spend            float64
	withdrawal       float64
	initialPortfolio float64
}

// PathProjector advances a portfolio through the growth and retirement phases.
type PathProjector struct {
	inputs domain.RetirementInputs
	policy GuardrailPolicy
}

// NewPathProjector creates a projector for one input record.
func NewPathProjector(in domain.RetirementInputs) *PathProjector {
	return &PathProjector{inputs: in, policy: PolicyFrom(in)}
}

// Project runs the full state machine. With stopOnDepletion the path ends at the
// first retirement year where both portfolio and cash bucket are exhausted.
func (pp *PathProjector) Project(src RateSource, stopOnDepletion bool) Projection {
	in := pp.inputs
	rows := make([]domain.YearRow, 0, in.ProjectionLength())
	state := pathState{
		portfolio:  in.CurrentAssets,
		cashBucket: in.CashBufferTarget(),
		spend:      in.AnnualSpend,
	}

	var row domain.YearRow
	for age := in.CurrentAge; age < in.RetireAge; age++ {
		state, row = pp.growthYear(state, age, src.Next(age))
		rows = append(rows, row)
	}

	state.initialPortfolio = state.portfolio
	state.withdrawal = in.InitialWR * state.portfolio

	for age := in.RetireAge; age <= in.PlanToAge; age++ {
		state, row = pp.retirementYear(state, age, src.Next(age))
		rows = append(rows, row)

		if stopOnDepletion && state.portfolio <= 0 && state.cashBucket <= 0 {
			return Projection{Rows: rows, Depleted: true, DepletionAge: age}
		}
	}
	return Projection{Rows: rows}
}

func (pp *PathProjector) growthYear(s pathState, age int, rates YearRates) (pathState, domain.YearRow) {
	s.portfolio *= 1 + rates.Return
	return s, domain.YearRow{
		Age:        age,
		Year:       age - pp.inputs.CurrentAge + 1,
		Portfolio:  s.portfolio,
		CashBucket: s.cashBucket,
	}
}

func (pp *PathProjector) retirementYear(s pathState, age int, rates YearRates) (pathState, domain.YearRow) {
	in := pp.inputs

	s.spend *= 1 + rates.Inflation
	income := in.IncomeAt(age)

	// The guardrail target only drives the reported rate; spend need is what is drawn.
	startPortfolio := s.portfolio
	s.withdrawal = pp.policy.Apply(s.withdrawal, startPortfolio, s.initialPortfolio)

	needed := max(s.spend-income, 0)
	fromCash := min(needed, s.cashBucket)
	s.cashBucket -= fromCash
	fromPortfolio := needed - fromCash

	s.portfolio = (s.portfolio - fromPortfolio) * (1 + rates.Return)

	target := in.CashBufferTarget()
	if s.portfolio > s.initialPortfolio && s.cashBucket < target {
		refill := min(target-s.cashBucket, s.portfolio-s.initialPortfolio)
		s.cashBucket += refill
		s.portfolio -= refill
	}

	// The rate is taken against the start-of-year portfolio the guardrail was
	// evaluated on, not the end-of-year value, so it stays within [floorWR, capWR].
	return s, domain.YearRow{
		Age:            age,
		Year:           age - in.CurrentAge + 1,
		Spend:          s.spend,
		Income:         income,
		Withdrawal:     needed,
		Portfolio:      s.portfolio,
		CashBucket:     s.cashBucket,
		WithdrawalRate: WithdrawalRate(s.withdrawal, startPortfolio),
	}
}
