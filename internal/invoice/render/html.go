// Package render turns a bound invoice document into printable output.
// One renderer, five layout definitions; the data binding happens once
// in the invoice service.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"

	"github.com/craftshop/backoffice/internal/invoice/domain"
)

var (
	hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)
	fontNameRe = regexp.MustCompile(`^[a-zA-Z0-9 ,'-]+$`)
)

// safeColor admits only hex colors into inline CSS. Anything else falls
// back to the stock accent.
func safeColor(c string) template.CSS {
	if !hexColorRe.MatchString(c) {
		c = "#1a1f36"
	}
	return template.CSS(c)
}

func safeFont(f string) template.CSS {
	if !fontNameRe.MatchString(f) {
		f = "Helvetica"
	}
	return template.CSS(f)
}

var funcMap = template.FuncMap{
	"accent": safeColor,
	"font":   safeFont,
	"inc":    func(i int) int { return i + 1 },
}

// HTMLRenderer holds the parsed layout set.
type HTMLRenderer struct {
	layouts map[domain.TemplateID]*template.Template
}

// NewHTML parses the built-in layouts. Parse failures are programmer
// errors and surface at construction, not render, time.
func NewHTML() (*HTMLRenderer, error) {
	sources := map[domain.TemplateID]string{
		domain.TemplateBasic:          layoutBasic,
		domain.TemplateTax:            layoutTax,
		domain.TemplateDetailed:       layoutDetailed,
		domain.TemplateProfessional:   layoutProfessional,
		domain.TemplateA4Professional: layoutA4Professional,
	}

	layouts := make(map[domain.TemplateID]*template.Template, len(sources))
	for id, src := range sources {
		tpl, err := template.New(string(id)).Funcs(funcMap).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("parse invoice layout %q: %w", id, err)
		}
		layouts[id] = tpl
	}
	return &HTMLRenderer{layouts: layouts}, nil
}

// Render executes the selected layout against the bound document.
func (r *HTMLRenderer) Render(id domain.TemplateID, data domain.DocumentData) ([]byte, error) {
	tpl, ok := r.layouts[id]
	if !ok {
		return nil, domain.ErrUnknownTemplate
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render invoice %q: %w", id, err)
	}
	return buf.Bytes(), nil
}
