package view

import (
	"html/template"

	"github.com/sadpe/extractor/internal/console"
)

// pageFiles associa cada tela ao arquivo que define seu bloco "content".
var pageFiles = map[console.Page]string{
	console.PageUpload:         "upload.html",
	console.PageEdit:           "edit.html",
	console.PageHistoryReports: "history_reports.html",
	console.PageHistoryUsers:   "history_users.html",
	console.PageIndicators:     "indicators.html",
	console.PageConfig:         "config.html",
}

// selectView escolhe login quando não há sessão; caso contrário a tela ativa
// dentro do shell. Tela fora do catálogo cai no upload.
func (r *Renderer) selectView(c *console.Console) (*template.Template, string) {
	if !c.LoggedIn() {
		return r.login, "login"
	}
	if t, ok := r.pages[c.ActivePage]; ok {
		return t, "shell"
	}
	return r.pages[console.PageUpload], "shell"
}
