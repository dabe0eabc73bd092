package output

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/rpgo/enoughcalc/internal/domain"
)

var yearRowHeader = []string{"Age", "Year", "Spend", "Income", "Withdrawal", "Portfolio", "CashBucket", "WithdrawalRate"}

func yearRowRecord(r domain.YearRow) []string {
	return []string{
		intToString(r.Age),
		intToString(r.Year),
		cents(r.Spend),
		cents(r.Income),
		cents(r.Withdrawal),
		cents(r.Portfolio),
		cents(r.CashBucket),
		rateString(r.WithdrawalRate),
	}
}

// CSVCashflowExporter writes the deterministic cashflow table, one row per year.
type CSVCashflowExporter struct{}

func (c CSVCashflowExporter) Name() string      { return "cashflow-csv" }
func (c CSVCashflowExporter) Extension() string { return "csv" }

func (c CSVCashflowExporter) Format(results *domain.CalculationResults) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := WriteCashflowCSV(buf, results.Deterministic.CashflowTable); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCashflowCSV streams rows as CSV with a header.
func WriteCashflowCSV(out io.Writer, rows []domain.YearRow) error {
	w := csv.NewWriter(out)
	if err := w.Write(yearRowHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write(yearRowRecord(r)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
