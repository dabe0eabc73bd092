package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/goccy/go-json"
	"github.com/rpgo/enoughcalc/internal/domain"
)

// HTMLFormatter produces a standalone HTML summary page.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"compact": FormatCompact,
	"pct":     FormatPercentage,
	"json": func(v any) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.CalculationResults) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.CalculationResults
		Assessment  Assessment
		Assumptions []string
	}{results, Assess(results), GenerateAssumptions(results.Inputs)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
