package view

import (
	"html/template"

	"github.com/sadpe/extractor/internal/console"
)

type sidebarLink struct {
	Page   console.Page
	Label  string
	Active bool
}

// viewData é o contexto entregue aos templates.
type viewData struct {
	DarkMode     bool
	LoggedIn     bool
	Email        string
	Initials     string
	SidebarOpen  bool
	UserMenuOpen bool
	Links        []sidebarLink
	CSRFField    template.HTML
	Content      pageContent
}

func newViewData(m Model) viewData {
	c := m.Console
	data := viewData{
		DarkMode:  c.UI.DarkMode,
		LoggedIn:  c.LoggedIn(),
		CSRFField: m.CSRFField,
		Content:   content,
	}
	if !data.LoggedIn {
		return data
	}

	data.Email = c.Session.Email
	// avatar fixo
	data.Initials = "TT"
	data.SidebarOpen = c.UI.SidebarOpen
	data.UserMenuOpen = c.UI.UserMenuOpen

	active := c.ActivePage
	if _, ok := pageFiles[active]; !ok {
		active = console.PageUpload
	}
	for _, p := range c.SidebarLinks() {
		data.Links = append(data.Links, sidebarLink{Page: p, Label: p.Label(), Active: p == active})
	}
	return data
}
