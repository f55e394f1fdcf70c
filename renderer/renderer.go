// Package renderer renders ledger views as markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/fintrack"
)

//go:embed templates/*.md
var templates embed.FS

// Ledger is the data model of a rendered ledger view.
type Ledger struct {
	Title string
	Rows  []Row
	Count int
	Net   string // sum of the displayed amounts
}

// Row is one transaction of a rendered ledger view.
type Row struct {
	Date        string
	Time        string
	Description string
	Vendor      string
	Amount      string
}

// NewLedger builds the model of view v. txs must be in display order already,
// see fintrack.View.Select.
func NewLedger(v fintrack.View, txs []fintrack.Transaction) *Ledger {
	l := &Ledger{Title: v.Title(), Count: len(txs)}
	net := fintrack.A(0)
	for _, tx := range txs {
		l.Rows = append(l.Rows, Row{
			Date:        tx.Date().String(),
			Time:        tx.Time().String(),
			Description: tx.Description(),
			Vendor:      tx.Vendor(),
			Amount:      tx.Amount().String(),
		})
		net = net.Add(tx.Amount().Cents())
	}
	l.Net = net.String()
	return l
}

// LedgerMarkdown renders view v of the ledger to a markdown string.
func LedgerMarkdown(v fintrack.View, ledger *fintrack.Ledger) string {
	return RenderLedger(NewLedger(v, ledger.View(v)))
}

// RenderLedger renders the Ledger struct to a markdown string.
func RenderLedger(l *Ledger) string {
	partials := map[string]string{
		"ledger_title": "templates/ledger_title.md",
		"ledger_table": "templates/ledger_table.md",
	}
	return renderTemplate("ledger", "templates/ledger.md", partials, l)
}

// markdownEscaper escapes the characters that would turn free text into markup.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
)

var funcs = template.FuncMap{
	"escape": markdownEscaper.Replace,
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
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
