package http

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/weatherdash/backend/internal/domain"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type indexPage struct {
	tmpl *template.Template
}

type indexData struct {
	Cities       []string
	DefaultUnits string
}

func newIndexPage() *indexPage {
	return &indexPage{tmpl: indexTemplate}
}

func (p *indexPage) render(cities []string, units domain.Units) ([]byte, error) {
	var buf bytes.Buffer
	err := p.tmpl.Execute(&buf, indexData{
		Cities:       cities,
		DefaultUnits: string(units),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
