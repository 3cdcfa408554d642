package view

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"github.com/sadpe/extractor/internal/console"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func render(t *testing.T, r *Renderer, c *console.Console) string {
	t.Helper()
	var buf bytes.Buffer
	err := r.Render(&buf, Model{Console: c, CSRFField: template.HTML(`<input type="hidden" name="csrf" value="tok">`)})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func login(t *testing.T, email string) *console.Console {
	t.Helper()
	c := console.New(false)
	if _, err := c.Login(email, ""); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestRenderLogin(t *testing.T) {
	r := newRenderer(t)
	out := render(t, r, console.New(false))

	for _, want := range []string{
		"Extractor - Acesso",
		`action="/login"`,
		`value="cadastro@sad.pe.gov.br"`,
		`value="gestor@sad.pe.gov.br"`,
		`value="admin@sad.pe.gov.br"`,
		`name="senha"`,
		`name="csrf"`,
		"Secretaria de Administração de Pernambuco",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("login sem %q", want)
		}
	}
	for _, unwanted := range []string{"sidebar-nav", "menu-toggle", "Sair", "app-root dark-mode"} {
		if strings.Contains(out, unwanted) {
			t.Fatalf("login não deveria conter %q", unwanted)
		}
	}

	dark := render(t, r, console.New(true))
	if !strings.Contains(dark, "app-root dark-mode") {
		t.Fatal("login deveria refletir tema do sistema")
	}
}

func TestRenderSidebarCadastro(t *testing.T) {
	r := newRenderer(t)
	out := render(t, r, login(t, "cadastro@sad.pe.gov.br"))

	if got := strings.Count(out, `name="page"`); got != 3 {
		t.Fatalf("expected 3 links got %d", got)
	}
	upload := strings.Index(out, `value="upload"`)
	edit := strings.Index(out, `value="edit"`)
	reports := strings.Index(out, `value="historyReports"`)
	if upload < 0 || !(upload < edit && edit < reports) {
		t.Fatalf("ordem inesperada: %d %d %d", upload, edit, reports)
	}
	for _, p := range []string{"historyUsers", "indicators", "config"} {
		if strings.Contains(out, `value="`+p+`"`) {
			t.Fatalf("cadastro não deveria ver %s", p)
		}
	}
	if !strings.Contains(out, "Upload dos documentos") {
		t.Fatal("tela inicial deveria ser upload")
	}
	if !strings.Contains(out, "Olá, <strong>cadastro@sad.pe.gov.br</strong>") {
		t.Fatal("saudação ausente")
	}
}

func TestRenderSidebarAdmin(t *testing.T) {
	r := newRenderer(t)
	c := login(t, "admin@sad.pe.gov.br")
	out := render(t, r, c)
	if got := strings.Count(out, `name="page"`); got != len(console.Catalog) {
		t.Fatalf("expected %d links got %d", len(console.Catalog), got)
	}
	if strings.Count(out, "sidebar-link-active") != 1 {
		t.Fatal("exatamente um link ativo")
	}
}

func TestRenderPages(t *testing.T) {
	r := newRenderer(t)
	headings := map[console.Page]string{
		console.PageUpload:         "Upload dos documentos",
		console.PageEdit:           "Edição dos dados extraídos",
		console.PageHistoryReports: "Histórico de Laudos",
		console.PageHistoryUsers:   "Histórico dos usuários",
		console.PageIndicators:     "Painel de Indicadores",
		console.PageConfig:         "Configurações dos usuários",
	}

	for page, heading := range headings {
		t.Run(string(page), func(t *testing.T) {
			c := login(t, "admin@sad.pe.gov.br")
			if err := c.RequestNavigate(page); err != nil {
				t.Fatal(err)
			}
			out := render(t, r, c)
			if !strings.Contains(out, "<h1>"+heading+"</h1>") {
				t.Fatalf("tela %s sem título %q", page, heading)
			}
		})
	}
}

func TestRenderPageContent(t *testing.T) {
	r := newRenderer(t)
	c := login(t, "admin@sad.pe.gov.br")

	_ = c.RequestNavigate(console.PageEdit)
	out := render(t, r, c)
	if strings.Count(out, "Laudo_xxx.pdf") != 4 || !strings.Contains(out, `class="row-danger"`) {
		t.Fatal("tabela de edição incompleta")
	}
	if !strings.Contains(out, `class="step step-active"`) {
		t.Fatal("etapa ativa ausente")
	}

	_ = c.RequestNavigate(console.PageHistoryReports)
	out = render(t, r, c)
	if !strings.Contains(out, "3 laudos selecionados") {
		t.Fatal("rodapé do histórico ausente")
	}

	_ = c.RequestNavigate(console.PageIndicators)
	out = render(t, r, c)
	if strings.Count(out, `class="indicator-card"`) != 4 {
		t.Fatal("esperados 4 indicadores")
	}

	_ = c.RequestNavigate(console.PageConfig)
	out = render(t, r, c)
	if strings.Count(out, "Reenviar E-mail") != 4 {
		t.Fatal("esperadas 4 linhas de usuários")
	}
}

func TestRenderShellState(t *testing.T) {
	r := newRenderer(t)
	c := login(t, "gestor@sad.pe.gov.br")

	out := render(t, r, c)
	if strings.Contains(out, "sidebar-open") || strings.Contains(out, "Modo Escuro") {
		t.Fatal("barra lateral e menu deveriam iniciar fechados")
	}

	_ = c.ToggleSidebar()
	_ = c.ToggleUserMenu()
	_ = c.ToggleDarkMode()
	out = render(t, r, c)
	for _, want := range []string{"sidebar sidebar-open", "sidebar-backdrop-open", "Modo Escuro", "dark-mode-toggle-on", "app-root dark-mode", `action="/logout"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("shell sem %q", want)
		}
	}
}

func TestRenderUnknownPageFallsBack(t *testing.T) {
	r := newRenderer(t)
	c := login(t, "admin@sad.pe.gov.br")
	c.ActivePage = console.Page("relatorios")

	out := render(t, r, c)
	if !strings.Contains(out, "Upload dos documentos") {
		t.Fatal("tela desconhecida deveria cair no upload")
	}
}

func TestRenderNilConsole(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	if err := r.Render(&buf, Model{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestStaticAssets(t *testing.T) {
	for _, name := range []string{"app.css", "logos/sad.svg", "logos/sad-extractor.svg"} {
		f, err := Static().Open(name)
		if err != nil {
			t.Fatalf("asset %s: %v", name, err)
		}
		f.Close()
	}
}
