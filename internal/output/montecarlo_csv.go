package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/enoughcalc/internal/domain"
)

// DefaultExportedPaths caps the chart export so a 10,000-path run stays readable.
const DefaultExportedPaths = 100

// CSVPathsExporter writes the year rows of simulated paths for charting.
// Paths are sampled at an even stride when there are more than MaxPaths.
type CSVPathsExporter struct {
	MaxPaths int // 0 exports every path
}

func (c CSVPathsExporter) Name() string      { return "paths-csv" }
func (c CSVPathsExporter) Extension() string { return "csv" }

func (c CSVPathsExporter) Format(results *domain.CalculationResults) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := append([]string{"SimulationID", "Depleted", "DepletionAge", "EndingBalance"}, yearRowHeader...)
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, id := range SamplePathIndexes(len(results.AllPaths), c.MaxPaths) {
		p := results.AllPaths[id]
		depletionAge := ""
		if p.DepletionAge != nil {
			depletionAge = intToString(*p.DepletionAge)
		}
		prefix := []string{intToString(id), boolToString(p.Depleted), depletionAge, cents(p.EndingBalance)}
		for _, r := range p.Path {
			if err := w.Write(append(append([]string(nil), prefix...), yearRowRecord(r)...)); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// SamplePathIndexes picks up to limit evenly spaced indexes out of n, always in ascending order.
func SamplePathIndexes(n, limit int) []int {
	if limit <= 0 || limit >= n {
		limit = n
	}
	idx := make([]int, 0, limit)
	for i := 0; i < limit; i++ {
		idx = append(idx, i*n/limit)
	}
	return idx
}
