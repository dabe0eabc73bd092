package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/enoughcalc/internal/calculation"
	"github.com/rpgo/enoughcalc/internal/config"
	"github.com/rpgo/enoughcalc/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInputs = "../testdata/example_inputs.yaml"

func TestEndToEndCalculation(t *testing.T) {
	parser := config.NewInputParser()
	in, err := parser.LoadFromFile(exampleInputs)
	require.NoError(t, err)
	require.Len(t, in.Incomes, 3)

	engine := calculation.NewCalculationEngine()
	results, err := engine.Calculate(context.Background(), *in)
	require.NoError(t, err)

	det := results.Deterministic
	assert.Len(t, det.CashflowTable, in.ProjectionLength())
	assert.Greater(t, det.EnoughNumberAtRetire, 0.0)
	assert.Less(t, det.EnoughNumberToday, det.EnoughNumberAtRetire)
	// consulting pays 4 years, pension 35, social security 28
	assert.InDelta(t, (30000.0*4+18000*35+36000*28)/67, det.AverageAnnualIncome, 1e-9)

	mc := results.MonteCarlo
	assert.Equal(t, 500, mc.Simulations)
	assert.Equal(t, int64(20240101), results.Seed)
	assert.GreaterOrEqual(t, mc.SuccessProbability, 0.0)
	assert.LessOrEqual(t, mc.SuccessProbability, 1.0)
}

func TestReproducibleAcrossWorkerCounts(t *testing.T) {
	in, err := config.NewInputParser().LoadFromFile(exampleInputs)
	require.NoError(t, err)

	var firsts []float64
	for _, workers := range []int{1, 3, 16} {
		run := in.Clone()
		run.Workers = workers
		res, err := calculation.NewCalculationEngine().Calculate(context.Background(), run)
		require.NoError(t, err)
		firsts = append(firsts, res.MonteCarlo.SuccessProbability)
	}
	assert.Equal(t, firsts[0], firsts[1])
	assert.Equal(t, firsts[0], firsts[2])
}

func TestOutputGeneration(t *testing.T) {
	in, err := config.NewInputParser().LoadFromFile(exampleInputs)
	require.NoError(t, err)
	results, err := calculation.NewCalculationEngine().Calculate(context.Background(), *in)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, format := range output.AvailableFormatterNames() {
		t.Run(format, func(t *testing.T) {
			files, err := output.GenerateReport(results, format, dir, true)
			require.NoError(t, err)
			require.Len(t, files, 1)
			assert.Equal(t, dir, filepath.Dir(files[0]))

			data, err := os.ReadFile(files[0])
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestConfigurationValidation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("retire_age: 30\nfloor_wr: 0.09\n"), 0644))

	_, err := config.NewInputParser().LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retireAge")
	assert.Contains(t, err.Error(), "floorWR")
}
