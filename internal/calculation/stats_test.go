package calculation

import (
	"math"
	"testing"

	"github.com/rpgo/enoughcalc/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCalculatePercentiles(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(100 - i)
	}
	p := CalculatePercentiles(values)

	assert.Equal(t, 100, p.Count)
	assert.Equal(t, 1.0, p.Min)
	assert.Equal(t, 6.0, p.Percentile5)
	assert.Equal(t, 26.0, p.Percentile25)
	assert.Equal(t, 51.0, p.Median)
	assert.Equal(t, 76.0, p.Percentile75)
	assert.Equal(t, 96.0, p.Percentile95)
	assert.Equal(t, 100.0, p.Max)
	assert.InDelta(t, 50.5, p.Average, 1e-12)

	// input is left untouched
	assert.Equal(t, 100.0, values[0])
}

func TestCalculatePercentiles_Empty(t *testing.T) {
	p := CalculatePercentiles(nil)
	assert.Zero(t, p.Count)
	for _, v := range []float64{p.Min, p.Percentile5, p.Percentile25, p.Median, p.Percentile75, p.Percentile95, p.Max, p.Average} {
		assert.True(t, math.IsNaN(v))
	}
}

func TestCalculatePercentiles_Single(t *testing.T) {
	p := CalculatePercentiles([]float64{42})
	assert.Equal(t, 42.0, p.Min)
	assert.Equal(t, 42.0, p.Median)
	assert.Equal(t, 42.0, p.Percentile95)
	assert.Equal(t, 42.0, p.Max)
}

func TestSummarize(t *testing.T) {
	age := func(a int) *int { return &a }
	paths := []domain.SimulationPathResult{
		{Depleted: true, DepletionAge: age(80)},
		{EndingBalance: 200},
		{Depleted: true, DepletionAge: age(75)},
		{EndingBalance: 100},
	}
	s := Summarize(paths)

	assert.Equal(t, 0.5, s.SuccessProbability)
	assert.Equal(t, 4, s.Simulations)
	assert.Equal(t, 2, s.DepletedPaths)
	assert.Equal(t, 0.5, s.DepletionRate())
	if assert.NotNil(t, s.WorstPathDepletionAge) {
		assert.Equal(t, 75, *s.WorstPathDepletionAge)
	}
	assert.Equal(t, 100.0, s.MinEndingBalance)
	assert.Equal(t, 100.0, s.Percentile5)
	assert.Equal(t, 200.0, s.MedianEndingBalance)
	assert.Equal(t, 200.0, s.MaxEndingBalance)
	assert.Equal(t, 150.0, s.AverageEndingBalance)
	assert.True(t, s.HasBalanceStats())
}

func TestSummarize_AllDepleted(t *testing.T) {
	age := 70
	s := Summarize([]domain.SimulationPathResult{{Depleted: true, DepletionAge: &age}})

	assert.Zero(t, s.SuccessProbability)
	assert.False(t, s.HasBalanceStats())
	assert.True(t, math.IsNaN(s.Percentile95))
}

func TestSummarize_NoPaths(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.SuccessProbability)
	assert.Zero(t, s.DepletionRate())
	assert.Nil(t, s.WorstPathDepletionAge)
}
