package console

import "strings"

// Role identifica o nível de permissão de quem acessa o console.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleGestor   Role = "gestor"
	RoleCadastro Role = "cadastro"
)

// Roles lista os papéis conhecidos, do mais amplo ao mais restrito.
var Roles = []Role{RoleAdmin, RoleGestor, RoleCadastro}

// identityMarkers define a ordem de prioridade da derivação por e-mail.
var identityMarkers = []struct {
	marker string
	role   Role
}{
	{"admin@", RoleAdmin},
	{"gestor@", RoleGestor},
	{"cadastro@", RoleCadastro},
}

// DeriveRole mapeia o e-mail selecionado no login para um papel.
// Retorna false quando nenhum papel pode ser derivado.
func DeriveRole(email string) (Role, bool) {
	if email == "" {
		return "", false
	}
	for _, m := range identityMarkers {
		if strings.Contains(email, m.marker) {
			return m.role, true
		}
	}
	return "", false
}

// Valid informa se o papel pertence ao conjunto conhecido.
func (r Role) Valid() bool {
	_, ok := RoleAccess[r]
	return ok
}

// Label devolve o nome exibido para o papel.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administração"
	case RoleGestor:
		return "Gestão"
	case RoleCadastro:
		return "Cadastro"
	default:
		return ""
	}
}
