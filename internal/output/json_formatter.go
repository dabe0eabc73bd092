package output

import (
	"github.com/goccy/go-json"
	"github.com/rpgo/enoughcalc/internal/domain"
)

// JSONFormatter serializes the calculation results as pretty-printed JSON.
// IncludePaths keeps every Monte Carlo path in the document.
type JSONFormatter struct {
	IncludePaths bool
}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(results *domain.CalculationResults) ([]byte, error) {
	out := *results
	if !j.IncludePaths {
		out.AllPaths = nil
	}
	return json.MarshalIndent(out, "", "  ")
}

// WithPaths returns f configured to keep every Monte Carlo path when it supports that.
func WithPaths(f Formatter, include bool) Formatter {
	if j, ok := f.(JSONFormatter); ok {
		j.IncludePaths = include
		return j
	}
	return f
}
