package console

// Page identifica uma das telas disponíveis após o login.
type Page string

const (
	PageUpload         Page = "upload"
	PageEdit           Page = "edit"
	PageHistoryReports Page = "historyReports"
	PageHistoryUsers   Page = "historyUsers"
	PageIndicators     Page = "indicators"
	PageConfig         Page = "config"
)

// Catalog é o catálogo fixo de telas, na ordem canônica.
var Catalog = []Page{
	PageUpload,
	PageEdit,
	PageHistoryReports,
	PageHistoryUsers,
	PageIndicators,
	PageConfig,
}

var pageLabels = map[Page]string{
	PageUpload:         "Upload de documentos",
	PageEdit:           "Editar dados",
	PageHistoryReports: "Histórico de Laudos",
	PageHistoryUsers:   "Histórico De Usuários",
	PageIndicators:     "Indicadores",
	PageConfig:         "Configurações",
}

// ParsePage converte o identificador recebido em formulário.
func ParsePage(raw string) (Page, bool) {
	p := Page(raw)
	if !p.Valid() {
		return "", false
	}
	return p, true
}

// Valid informa se a tela pertence ao catálogo.
func (p Page) Valid() bool {
	_, ok := pageLabels[p]
	return ok
}

// Label devolve o texto do link na barra lateral.
func (p Page) Label() string {
	return pageLabels[p]
}
