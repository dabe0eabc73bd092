package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/enoughcalc/internal/domain"
)

// ErrUnsupportedFormat is returned for unknown report formats.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Resolve returns the formatter for a name or alias, or an error that lists the valid choices.
func Resolve(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	// enrich error with available formatters and aliases
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// Render writes one format to w.
func Render(w io.Writer, results *domain.CalculationResults, format string, includePaths bool) error {
	f, err := Resolve(format)
	if err != nil {
		return err
	}
	f = WithPaths(f, includePaths)
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport writes one file per requested format into dir. "all" expands
// to the verbose console report plus both CSV exports.
func GenerateReport(results *domain.CalculationResults, format, dir string, includePaths bool) ([]string, error) {
	var formats []string
	if NormalizeFormatName(format) == "all" {
		formats = []string{"console", "csv", "cashflow-csv"}
	} else {
		formats = []string{format}
	}

	var files []string
	for _, name := range formats {
		f, err := Resolve(name)
		if err != nil {
			return files, err
		}
		file, err := WriteFormatted(WithPaths(f, includePaths), results, dir)
		if err != nil {
			return files, err
		}
		files = append(files, file)
	}
	return files, nil
}
