package console

import "errors"

var (
	// ErrUnknownIdentity indica que nenhum papel pôde ser derivado do e-mail.
	ErrUnknownIdentity = errors.New("identidade não reconhecida")
	// ErrSessionActive indica tentativa de login com sessão já ativa.
	ErrSessionActive = errors.New("sessão já ativa")
	// ErrNoSession indica operação que exige sessão ativa.
	ErrNoSession = errors.New("nenhuma sessão ativa")
	// ErrNavigationDenied indica tela fora das permissões do papel.
	ErrNavigationDenied = errors.New("navegação não autorizada")
)

// Session representa a identidade logada.
type Session struct {
	Role  Role   `json:"role"`
	Email string `json:"email"`
	// DarkMode guarda a preferência de tema no momento do login.
	DarkMode bool `json:"dark_mode"`
}

// UIState agrupa flags efêmeras da interface.
type UIState struct {
	SidebarOpen  bool `json:"sidebar_open"`
	DarkMode     bool `json:"dark_mode"`
	UserMenuOpen bool `json:"user_menu_open"`
}

// Console é o estado completo de uma instância do console.
// Session nula significa que apenas a tela de login está acessível.
type Console struct {
	Session    *Session `json:"session"`
	ActivePage Page     `json:"active_page"`
	UI         UIState  `json:"ui"`
}

// New cria um console deslogado. systemDark é a preferência de tema do
// sistema lida na montagem da tela de login.
func New(systemDark bool) *Console {
	return &Console{
		ActivePage: PageUpload,
		UI:         UIState{DarkMode: systemDark},
	}
}

// LoggedIn informa se existe sessão ativa.
func (c *Console) LoggedIn() bool {
	return c.Session != nil
}

// Login deriva o papel a partir do e-mail e abre a sessão.
// A senha não tem efeito.
func (c *Console) Login(email, password string) (Role, error) {
	if c.Session != nil {
		return "", ErrSessionActive
	}
	role, ok := DeriveRole(email)
	if !ok {
		return "", ErrUnknownIdentity
	}

	c.Session = &Session{Role: role, Email: email, DarkMode: c.UI.DarkMode}
	c.ActivePage = PageUpload
	c.UI.SidebarOpen = false
	c.UI.DarkMode = c.Session.DarkMode
	return role, nil
}

// Logout encerra a sessão. O tema volta para a preferência do sistema
// consultada agora, descartando o valor alternado durante a sessão.
func (c *Console) Logout(systemDark bool) error {
	if c.Session == nil {
		return ErrNoSession
	}
	c.Session = nil
	c.UI.SidebarOpen = false
	c.UI.UserMenuOpen = false
	c.UI.DarkMode = systemDark
	return nil
}

// RequestNavigate troca a tela ativa quando o papel permite e fecha a barra lateral.
func (c *Console) RequestNavigate(page Page) error {
	if c.Session == nil {
		return ErrNoSession
	}
	if !CanAccess(c.Session.Role, page) {
		return ErrNavigationDenied
	}
	c.ActivePage = page
	c.UI.SidebarOpen = false
	return nil
}

// SidebarLinks devolve as telas exibidas na barra lateral.
func (c *Console) SidebarLinks() []Page {
	if c.Session == nil {
		return nil
	}
	return sidebarPages(c.Session.Role)
}

// ToggleDarkMode alterna o tema durante a sessão.
func (c *Console) ToggleDarkMode() error {
	if c.Session == nil {
		return ErrNoSession
	}
	c.UI.DarkMode = !c.UI.DarkMode
	return nil
}

// ToggleSidebar abre ou fecha a barra lateral.
func (c *Console) ToggleSidebar() error {
	if c.Session == nil {
		return ErrNoSession
	}
	c.UI.SidebarOpen = !c.UI.SidebarOpen
	return nil
}

// CloseSidebar fecha a barra lateral (clique no fundo escurecido).
func (c *Console) CloseSidebar() error {
	if c.Session == nil {
		return ErrNoSession
	}
	c.UI.SidebarOpen = false
	return nil
}

// ToggleUserMenu abre ou fecha o menu do avatar.
func (c *Console) ToggleUserMenu() error {
	if c.Session == nil {
		return ErrNoSession
	}
	c.UI.UserMenuOpen = !c.UI.UserMenuOpen
	return nil
}

// Clone devolve cópia independente do estado.
func (c *Console) Clone() *Console {
	out := *c
	if c.Session != nil {
		s := *c.Session
		out.Session = &s
	}
	return &out
}
