package domain

import (
	"math"

	"github.com/goccy/go-json"
)

// MarshalJSON emits null for statistics that are undefined because every path depleted.
func (s SimulationSummary) MarshalJSON() ([]byte, error) {
	type view struct {
		SuccessProbability    float64  `json:"successProbability"`
		Simulations           int      `json:"simulations"`
		DepletedPaths         int      `json:"depletedPaths"`
		MedianEndingBalance   *float64 `json:"medianEndingBalance"`
		Percentile5           *float64 `json:"percentile5"`
		Percentile25          *float64 `json:"percentile25"`
		Percentile75          *float64 `json:"percentile75"`
		Percentile95          *float64 `json:"percentile95"`
		AverageEndingBalance  *float64 `json:"averageEndingBalance"`
		MinEndingBalance      *float64 `json:"minEndingBalance"`
		MaxEndingBalance      *float64 `json:"maxEndingBalance"`
		WorstPathDepletionAge *int     `json:"worstPathDepletionAge,omitempty"`
	}
	return json.Marshal(view{
		SuccessProbability:    s.SuccessProbability,
		Simulations:           s.Simulations,
		DepletedPaths:         s.DepletedPaths,
		MedianEndingBalance:   finite(s.MedianEndingBalance),
		Percentile5:           finite(s.Percentile5),
		Percentile25:          finite(s.Percentile25),
		Percentile75:          finite(s.Percentile75),
		Percentile95:          finite(s.Percentile95),
		AverageEndingBalance:  finite(s.AverageEndingBalance),
		MinEndingBalance:      finite(s.MinEndingBalance),
		MaxEndingBalance:      finite(s.MaxEndingBalance),
		WorstPathDepletionAge: s.WorstPathDepletionAge,
	})
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
