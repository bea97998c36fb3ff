// Package renderer turns store views into markdown reports. The layouts
// live in embedded .md templates so wording and structure can change
// without touching Go code.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// RenderDashboard renders the financial overview to a markdown string.
func RenderDashboard(d *Dashboard) string {
	partials := map[string]string{
		"dashboard_totals":   "dashboard_totals.md",
		"dashboard_cashflow": "dashboard_cashflow.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, d)
}

// RenderMatrix renders the member-by-month dues matrix to a markdown string.
func RenderMatrix(m *Matrix) string {
	partials := map[string]string{
		"matrix_legend": "matrix_legend.md",
	}
	return renderTemplate("matrix", "matrix.md", partials, m)
}

// RenderLedger renders a list of ledger entries to a markdown string.
func RenderLedger(l *Ledger) string {
	return renderTemplate("ledger", "ledger.md", nil, l)
}

// RenderMembers renders the member list to a markdown string.
func RenderMembers(ml *MemberList) string {
	return renderTemplate("members", "members.md", nil, ml)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
