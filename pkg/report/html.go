package report

import (
	_ "embed"
	"html/template"
	"io"
	"strings"

	"github.com/user/bountyx-ai/pkg/engine"
)

//go:embed templates/report.html.tmpl
var htmlTemplate string

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"upper":       strings.ToUpper,
	"statusLabel": statusLabel,
	"vulnClass":   vulnClass,
	"nl2br":       nl2br,
	// Summary counts are pointers; printing one directly would render
	// the address.
	"deref": func(p *int) int { return *p },
}).Parse(htmlTemplate))

func writeHTML(w io.Writer, r *Report) error {
	return reportTmpl.Execute(w, r)
}

// vulnClass maps a severity to its CSS class; anything outside the
// colored set renders like low.
func vulnClass(s engine.Severity) string {
	switch s {
	case engine.SeverityCritical, engine.SeverityHigh, engine.SeverityMedium, engine.SeverityLow:
		return "vuln-" + string(s)
	default:
		return "vuln-low"
	}
}

// nl2br escapes the text and converts newlines to <br> so multi-line AI
// output keeps its layout.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
