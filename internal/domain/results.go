package domain

import (
	"math"
	"time"
)

// YearRow is a snapshot of one projected year. Growth-phase rows carry zero
// spend, income and withdrawal.
type YearRow struct {
	Age            int     `json:"age"`
	Year           int     `json:"year"`
	Spend          float64 `json:"spend"`
	Income         float64 `json:"income"`
	Withdrawal     float64 `json:"withdrawal"`
	Portfolio      float64 `json:"portfolio"`
	CashBucket     float64 `json:"cashBucket"`
	WithdrawalRate float64 `json:"withdrawalRate"`
}

// Retired reports whether the row belongs to the retirement phase.
func (r YearRow) Retired(retireAge int) bool { return r.Age >= retireAge }

// TotalBalance is portfolio plus cash bucket.
func (r YearRow) TotalBalance() float64 { return r.Portfolio + r.CashBucket }

// SimulationPathResult is the outcome of one Monte Carlo path.
type SimulationPathResult struct {
	Depleted      bool      `json:"depleted"`
	DepletionAge  *int      `json:"depletionAge,omitempty"`
	EndingBalance float64   `json:"endingBalance"`
	Path          []YearRow `json:"path"`
}

// DeterministicResult holds the closed-form enough number and the expected-return cashflow table.
type DeterministicResult struct {
	EnoughNumberToday    float64   `json:"enoughNumberToday"`
	EnoughNumberAtRetire float64   `json:"enoughNumberAtRetire"`
	AverageAnnualIncome  float64   `json:"averageAnnualIncome"`
	GapToGoal            float64   `json:"gapToGoal"`
	YearsToFI            float64   `json:"yearsToFI"`
	CashflowTable        []YearRow `json:"cashflowTable"`
}

// Shortfall reports whether current assets fall short of today's enough number.
func (d DeterministicResult) Shortfall() bool { return d.GapToGoal > 0 }

// FinalRow returns the last row of the cashflow table.
func (d DeterministicResult) FinalRow() (YearRow, bool) {
	if len(d.CashflowTable) == 0 {
		return YearRow{}, false
	}
	return d.CashflowTable[len(d.CashflowTable)-1], true
}

// SimulationSummary aggregates Monte Carlo outcomes. Balance statistics cover
// non-depleted paths only and are NaN when every path depleted.
type SimulationSummary struct {
	SuccessProbability    float64 `json:"successProbability"`
	Simulations           int     `json:"simulations"`
	DepletedPaths         int     `json:"depletedPaths"`
	MedianEndingBalance   float64 `json:"medianEndingBalance"`
	Percentile5           float64 `json:"percentile5"`
	Percentile25          float64 `json:"percentile25"`
	Percentile75          float64 `json:"percentile75"`
	Percentile95          float64 `json:"percentile95"`
	AverageEndingBalance  float64 `json:"averageEndingBalance"`
	MinEndingBalance      float64 `json:"minEndingBalance"`
	MaxEndingBalance      float64 `json:"maxEndingBalance"`
	WorstPathDepletionAge *int    `json:"worstPathDepletionAge,omitempty"`
}

// HasBalanceStats reports whether at least one path survived.
func (s SimulationSummary) HasBalanceStats() bool { return !math.IsNaN(s.MedianEndingBalance) }

// DepletionRate is the fraction of depleted paths.
func (s SimulationSummary) DepletionRate() float64 {
	if s.Simulations == 0 {
		return 0
	}
	return float64(s.DepletedPaths) / float64(s.Simulations)
}

// CalculationResults is produced fresh for every calculation request.
type CalculationResults struct {
	ID            string                 `json:"id"`
	CalculatedAt  time.Time              `json:"calculatedAt"`
	Inputs        RetirementInputs       `json:"inputs"`
	Seed          int64                  `json:"seed"`
	Deterministic DeterministicResult    `json:"deterministic"`
	MonteCarlo    SimulationSummary      `json:"monteCarlo"`
	AllPaths      []SimulationPathResult `json:"allPaths"`
}
