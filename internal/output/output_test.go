package output

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"math"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rpgo/enoughcalc/internal/calculation"
	"github.com/rpgo/enoughcalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults(t *testing.T) *domain.CalculationResults {
	t.Helper()
	in := domain.NewInputsBuilder(domain.DefaultInputs()).Simulation(50, 42).Build()
	res, err := calculation.NewCalculationEngine().Calculate(context.Background(), in)
	require.NoError(t, err)
	res.CalculatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return res
}

func readCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestFormatterRegistry(t *testing.T) {
	assert.Equal(t, "console", GetFormatterByName("verbose").Name())
	assert.Equal(t, "console-lite", GetFormatterByName("summary").Name())
	assert.Equal(t, "json", GetFormatterByName(" JSON ").Name())
	assert.Equal(t, "paths-csv", GetFormatterByName("paths").Name())
	assert.Nil(t, GetFormatterByName("pdf"))

	names := AvailableFormatterNames()
	assert.Equal(t, []string{"cashflow-csv", "console", "console-lite", "csv", "html", "json", "paths-csv"}, names)
	assert.Contains(t, AvailableFormatAliases(), "verbose")

	_, err := Resolve("pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "console-lite")
}

func TestConsoleFormatters(t *testing.T) {
	res := sampleResults(t)

	lite, err := ConsoleFormatter{}.Format(res)
	require.NoError(t, err)
	assert.Contains(t, string(lite), "RETIREMENT SUMMARY")
	assert.Contains(t, string(lite), "Success Probability:")

	verbose, err := ConsoleVerboseFormatter{}.Format(res)
	require.NoError(t, err)
	out := string(verbose)
	assert.Contains(t, out, "MONTE CARLO (50 paths, seed 42)")
	assert.Contains(t, out, "Needed at retirement:      $3,300,000")
	assert.Contains(t, out, "KEY ASSUMPTIONS:")
	assert.Contains(t, out, `Income "Social Security": $48,000/yr from age 67 to 95`)
	assert.Contains(t, out, "DETERMINISTIC CASHFLOW")
	assert.Equal(t, 54, strings.Count(out[strings.Index(out, "DETERMINISTIC CASHFLOW"):], "\n")-2)
}

func TestCSVSummarizer(t *testing.T) {
	res := sampleResults(t)
	data, err := CSVSummarizer{}.Format(res)
	require.NoError(t, err)

	records := readCSV(t, data)
	require.Len(t, records, 18)
	assert.Equal(t, []string{"Metric", "Value", "Description"}, records[0])

	values := map[string]string{}
	for _, r := range records[1:] {
		values[r[0]] = r[1]
	}
	assert.Equal(t, "3300000.00", values["EnoughNumberAtRetire"])
	assert.Equal(t, "50", values["Simulations"])
	assert.Equal(t, "42", values["Seed"])
}

func TestCSVCashflowExporter(t *testing.T) {
	res := sampleResults(t)
	data, err := CSVCashflowExporter{}.Format(res)
	require.NoError(t, err)

	records := readCSV(t, data)
	require.Len(t, records, 1+54)
	assert.Equal(t, yearRowHeader, records[0])
	assert.Equal(t, "42", records[1][0])
	assert.Equal(t, "0.00", records[1][2])
	assert.Equal(t, "95", records[54][0])
}

func TestCSVPathsExporter(t *testing.T) {
	res := sampleResults(t)
	data, err := CSVPathsExporter{MaxPaths: 5}.Format(res)
	require.NoError(t, err)

	ids := map[string]bool{}
	for _, r := range readCSV(t, data)[1:] {
		ids[r[0]] = true
	}
	assert.Equal(t, map[string]bool{"0": true, "10": true, "20": true, "30": true, "40": true}, ids)
}

func TestSamplePathIndexes(t *testing.T) {
	assert.Equal(t, []int{0, 3, 6}, SamplePathIndexes(10, 3))
	assert.Equal(t, []int{0, 1, 2}, SamplePathIndexes(3, 10))
	assert.Equal(t, []int{0, 1}, SamplePathIndexes(2, 0))
	assert.Empty(t, SamplePathIndexes(0, 5))
}

func TestJSONFormatter(t *testing.T) {
	res := sampleResults(t)

	data, err := JSONFormatter{}.Format(res)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, res.ID, doc["id"])
	assert.Nil(t, doc["allPaths"])
	assert.Len(t, res.AllPaths, 50, "formatting must not strip the caller's paths")

	data, err = WithPaths(JSONFormatter{}, true).Format(res)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc["allPaths"], 50)

	assert.Equal(t, CSVSummarizer{}, WithPaths(CSVSummarizer{}, true))
}

func TestHTMLFormatter(t *testing.T) {
	res := sampleResults(t)
	data, err := HTMLFormatter{}.Format(res)
	require.NoError(t, err)

	page := string(data)
	assert.Contains(t, page, "<h1>Your Retirement Summary</h1>")
	assert.Contains(t, page, Assess(res).Rating)
	assert.Contains(t, page, "(50 paths)")
	assert.Contains(t, page, "successProbability")
}

func TestAssess(t *testing.T) {
	base := func(p, gap, years float64) *domain.CalculationResults {
		return &domain.CalculationResults{
			Inputs:        domain.DefaultInputs(),
			Deterministic: domain.DeterministicResult{GapToGoal: gap, YearsToFI: years},
			MonteCarlo:    domain.SimulationSummary{SuccessProbability: p},
		}
	}

	tests := []struct {
		name   string
		p      float64
		rating string
	}{
		{"strong", 0.85, "Excellent"},
		{"at strong threshold", 0.8, "Good"},
		{"moderate", 0.7, "Good"},
		{"at moderate threshold", 0.6, "Needs attention"},
		{"weak", 0.2, "Needs attention"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.rating, Assess(base(tt.p, 0, 0)).Rating)
		})
	}

	a := Assess(base(0.9, 250000, 2.1))
	assert.Equal(t, "Need to save more", a.GapStatus)
	assert.Equal(t, 3, a.YearsToFI)
	assert.Equal(t, "$147,600", a.AfterTaxSpend)

	a = Assess(base(0.9, -1, 0))
	assert.Equal(t, "On track!", a.GapStatus)
	assert.Zero(t, a.YearsToFI)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "n/a", FormatCurrency(math.NaN()))
	assert.Equal(t, "n/a", FormatCompact(math.NaN()))
	assert.Equal(t, "$1,234,568", FormatCurrency(1234567.8))
	assert.Equal(t, "4.3%", FormatPercentage(0.043))
	assert.Equal(t, "", cents(math.NaN()))
	assert.Equal(t, "12.35", cents(12.345))
	assert.Equal(t, "0.040000", rateString(0.04))
}

func TestGenerateReport(t *testing.T) {
	res := sampleResults(t)
	dir := t.TempDir()

	files, err := GenerateReport(res, "all", dir, false)
	require.NoError(t, err)
	require.Len(t, files, 3)
	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
		assert.Contains(t, f, "20250601_120000")
	}

	_, err = GenerateReport(res, "pdf", dir, false)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestRender(t *testing.T) {
	res := sampleResults(t)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, res, "csv", false))
	assert.True(t, strings.HasPrefix(buf.String(), "Metric,Value,Description"))

	assert.Error(t, Render(&buf, res, "pdf", false))
}
