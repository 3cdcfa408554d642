package view

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/sadpe/extractor/internal/console"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static expõe CSS e logotipos embutidos, com raiz em static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Model é o que a camada HTTP entrega para renderização.
type Model struct {
	Console *console.Console
	// CSRFField é o campo oculto inserido em cada formulário.
	CSRFField template.HTML
}

type stepsBar struct {
	Steps  []step
	Active int
}

var funcs = template.FuncMap{
	"stepsAt": func(active int) stepsBar { return stepsBar{Steps: steps, Active: active} },
}

// Renderer mantém os templates já parseados.
type Renderer struct {
	login *template.Template
	pages map[console.Page]*template.Template
}

// New parseia todos os templates embutidos.
func New() (*Renderer, error) {
	base, err := template.New("base").Funcs(funcs).ParseFS(templateFS, "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("parse partials: %w", err)
	}

	login, err := template.Must(base.Clone()).ParseFS(templateFS, "templates/login.html")
	if err != nil {
		return nil, fmt.Errorf("parse login: %w", err)
	}

	shell, err := template.Must(base.Clone()).ParseFS(templateFS, "templates/shell.html")
	if err != nil {
		return nil, fmt.Errorf("parse shell: %w", err)
	}

	r := &Renderer{login: login, pages: make(map[console.Page]*template.Template, len(pageFiles))}
	for page, file := range pageFiles {
		t, err := template.Must(shell.Clone()).ParseFS(templateFS, "templates/pages/"+file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// Render escreve o documento completo para o estado informado.
func (r *Renderer) Render(w io.Writer, m Model) error {
	if m.Console == nil {
		return errors.New("render: console nulo")
	}

	tmpl, name := r.selectView(m.Console)
	if err := tmpl.ExecuteTemplate(w, name, newViewData(m)); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
