package console

// RoleAccess associa cada papel às telas que pode visualizar.
// A ordem de cada lista define a ordem dos links na barra lateral.
var RoleAccess = map[Role][]Page{
	RoleAdmin: {
		PageUpload,
		PageEdit,
		PageHistoryReports,
		PageHistoryUsers,
		PageIndicators,
		PageConfig,
	},
	RoleGestor: {
		PageUpload,
		PageEdit,
		PageHistoryReports,
		PageHistoryUsers,
		PageIndicators,
	},
	RoleCadastro: {
		PageUpload,
		PageEdit,
		PageHistoryReports,
	},
}

// CanAccess informa se o papel pode visualizar a tela.
func CanAccess(role Role, page Page) bool {
	for _, p := range RoleAccess[role] {
		if p == page {
			return true
		}
	}
	return false
}

// AllowedPages devolve uma cópia das telas permitidas ao papel, na ordem da tabela.
func AllowedPages(role Role) []Page {
	allowed := RoleAccess[role]
	out := make([]Page, len(allowed))
	copy(out, allowed)
	return out
}

// sidebarPages filtra a tabela do papel contra o catálogo fixo.
func sidebarPages(role Role) []Page {
	links := make([]Page, 0, len(RoleAccess[role]))
	for _, p := range RoleAccess[role] {
		if p.Valid() {
			links = append(links, p)
		}
	}
	return links
}
