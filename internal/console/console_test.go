package console

import (
	"errors"
	"reflect"
	"testing"
)

func loggedIn(t *testing.T, email string) *Console {
	t.Helper()
	c := New(false)
	if _, err := c.Login(email, ""); err != nil {
		t.Fatalf("login %s: %v", email, err)
	}
	return c
}

func TestLoginCadastro(t *testing.T) {
	c := New(false)
	c.UI.SidebarOpen = true

	role, err := c.Login("cadastro@sad.pe.gov.br", "qualquer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != RoleCadastro || c.Session.Role != RoleCadastro {
		t.Fatalf("expected cadastro got %s", c.Session.Role)
	}
	if c.ActivePage != PageUpload {
		t.Fatalf("expected upload got %s", c.ActivePage)
	}
	if c.UI.SidebarOpen {
		t.Fatal("barra lateral deveria estar fechada")
	}

	want := []Page{PageUpload, PageEdit, PageHistoryReports}
	if got := c.SidebarLinks(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v got %v", want, got)
	}
}

func TestLoginRejected(t *testing.T) {
	for _, email := range []string{"", "random@x.com"} {
		c := New(true)
		before := *c
		_, err := c.Login(email, "senha")
		if !errors.Is(err, ErrUnknownIdentity) {
			t.Fatalf("expected ErrUnknownIdentity got %v", err)
		}
		if c.Session != nil || c.UI != before.UI || c.ActivePage != before.ActivePage {
			t.Fatalf("estado alterado após login rejeitado: %+v", c)
		}
	}
}

func TestLoginWhileLoggedIn(t *testing.T) {
	c := loggedIn(t, "gestor@sad.pe.gov.br")
	if _, err := c.Login("admin@sad.pe.gov.br", ""); !errors.Is(err, ErrSessionActive) {
		t.Fatalf("expected ErrSessionActive got %v", err)
	}
	if c.Session.Role != RoleGestor {
		t.Fatalf("papel alterado para %s", c.Session.Role)
	}
}

func TestLoginCarriesDarkMode(t *testing.T) {
	c := New(true)
	if _, err := c.Login("admin@sad.pe.gov.br", ""); err != nil {
		t.Fatal(err)
	}
	if !c.Session.DarkMode || !c.UI.DarkMode {
		t.Fatal("tema escuro da tela de login deveria ser mantido")
	}
}

func TestNavigateUnauthorizedIgnored(t *testing.T) {
	c := loggedIn(t, "cadastro@sad.pe.gov.br")
	c.UI.SidebarOpen = true

	err := c.RequestNavigate(PageConfig)
	if !errors.Is(err, ErrNavigationDenied) {
		t.Fatalf("expected ErrNavigationDenied got %v", err)
	}
	if c.ActivePage != PageUpload {
		t.Fatalf("expected upload got %s", c.ActivePage)
	}
	if !c.UI.SidebarOpen {
		t.Fatal("estado não deveria mudar em navegação negada")
	}
}

func TestNavigateAuthorized(t *testing.T) {
	c := loggedIn(t, "admin@sad.pe.gov.br")
	c.UI.SidebarOpen = true

	if err := c.RequestNavigate(PageIndicators); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ActivePage != PageIndicators {
		t.Fatalf("expected indicators got %s", c.ActivePage)
	}
	if c.UI.SidebarOpen {
		t.Fatal("barra lateral deveria fechar")
	}
}

func TestNavigateWithoutSession(t *testing.T) {
	c := New(false)
	if err := c.RequestNavigate(PageEdit); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession got %v", err)
	}
	if c.ActivePage != PageUpload {
		t.Fatalf("expected upload got %s", c.ActivePage)
	}
}

func TestLogoutResetsDarkModeToSystem(t *testing.T) {
	c := loggedIn(t, "gestor@sad.pe.gov.br")
	if err := c.ToggleDarkMode(); err != nil {
		t.Fatal(err)
	}
	if !c.UI.DarkMode {
		t.Fatal("tema escuro deveria estar ativo")
	}
	c.UI.SidebarOpen = true
	c.UI.UserMenuOpen = true

	if err := c.Logout(false); err != nil {
		t.Fatal(err)
	}
	if c.UI.DarkMode {
		t.Fatal("preferência do sistema deveria prevalecer")
	}
	if c.Session != nil || c.UI.SidebarOpen || c.UI.UserMenuOpen {
		t.Fatalf("estado inesperado após logout: %+v", c)
	}
	if err := c.Logout(true); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession got %v", err)
	}
}

func TestLoginAfterLogoutResetsPage(t *testing.T) {
	c := loggedIn(t, "admin@sad.pe.gov.br")
	_ = c.RequestNavigate(PageConfig)
	_ = c.Logout(false)
	if _, err := c.Login("cadastro@sad.pe.gov.br", ""); err != nil {
		t.Fatal(err)
	}
	if c.ActivePage != PageUpload {
		t.Fatalf("expected upload got %s", c.ActivePage)
	}
}

func TestToggleDarkModeIdempotent(t *testing.T) {
	c := loggedIn(t, "cadastro@sad.pe.gov.br")
	before := c.UI.DarkMode
	_ = c.ToggleDarkMode()
	_ = c.ToggleDarkMode()
	if c.UI.DarkMode != before {
		t.Fatalf("expected %v got %v", before, c.UI.DarkMode)
	}
}

func TestToggleDarkModeOnLoginScreen(t *testing.T) {
	c := New(true)
	if err := c.ToggleDarkMode(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession got %v", err)
	}
	if !c.UI.DarkMode {
		t.Fatal("tela de login não aceita alternância manual")
	}
}

func TestSidebarAndUserMenu(t *testing.T) {
	c := New(false)
	if err := c.ToggleSidebar(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession got %v", err)
	}
	if c.SidebarLinks() != nil {
		t.Fatal("sem sessão não há links")
	}

	c = loggedIn(t, "gestor@sad.pe.gov.br")
	_ = c.ToggleSidebar()
	if !c.UI.SidebarOpen {
		t.Fatal("barra lateral deveria abrir")
	}
	_ = c.CloseSidebar()
	if c.UI.SidebarOpen {
		t.Fatal("barra lateral deveria fechar")
	}
	_ = c.ToggleUserMenu()
	if !c.UI.UserMenuOpen {
		t.Fatal("menu do usuário deveria abrir")
	}
	if got := len(c.SidebarLinks()); got != 5 {
		t.Fatalf("expected 5 links got %d", got)
	}
}

func TestClone(t *testing.T) {
	c := loggedIn(t, "admin@sad.pe.gov.br")
	cp := c.Clone()
	cp.Session.Role = RoleCadastro
	cp.UI.DarkMode = !c.UI.DarkMode
	if c.Session.Role != RoleAdmin {
		t.Fatal("Clone compartilha sessão")
	}
}
