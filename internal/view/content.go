package view

// Conteúdo fixo exibido nas telas. Nada aqui deriva da sessão.

type step struct {
	Number int
	Label  string
}

var steps = []step{
	{1, "Upload"},
	{2, "Edição"},
	{3, "Exportação"},
}

type editRow struct {
	ID         int
	File       string
	Extracted  string
	Percent    string
	Confidence string
	Action     string
	Danger     bool
}

var editRows = []editRow{
	{1, "Laudo_xxx.pdf", "12/30", "40%", "confidence-low", "Revisar Campos", false},
	{2, "Laudo_xxx.pdf", "30/30", "100%", "confidence-high", "Prosseguir", false},
	{3, "Laudo_xxx.pdf", "21/30", "70%", "confidence-medium", "Prosseguir", false},
	{4, "Laudo_xxx.pdf", "03/30", "10%", "confidence-very-low", "Descartado", true},
}

type filterField struct {
	Label       string
	Placeholder string
}

var reportFilters = []filterField{
	{"Nº do documento", "Pesquisar"},
	{"Endereço", "Pesquisar"},
	{"Coordenadas", "Pesquisar"},
	{"Data da Extração", "00/00/0000"},
}

type reportRow struct {
	Document     string
	Address      string
	LatitudeS    string
	LongitudeW   string
	Conservation string
	Value        string
	ExtractedAt  string
}

var reportRows = []reportRow{
	{"LA 000 SAD/XXX", "Rua XXXX XXXXX", `0º0'00,0"S`, `0º0'00,0"W`, "status-good", "R$ x.xxx.xxx,xx", "XX/XX/2025"},
	{"LA 000 SAD/XXX", "Rua XXXX XXXXX", `0º0'00,0"S`, `0º0'00,0"W`, "status-medium", "R$ x.xxx.xxx,xx", "XX/XX/2025"},
	{"LA 000 SAD/XXX", "Rua XXXX XXXXX", `0º0'00,0"S`, `0º0'00,0"W`, "status-low", "R$ x.xxx.xxx,xx", "XX/XX/2025"},
}

type userAction struct {
	User       string
	Action     string
	Report     string
	ModifiedAt string
}

var userActions = []userAction{
	{"User_01", "Editou laudo", "LA 000 SAD/XXX", "18/07/2025"},
	{"User_02", "Extraiu novo laudo", "LA 000 SAD/XXX", "17/07/2025"},
	{"User_03", "Excluiu laudo", "LA 000 SAD/XXX", "18/07/2025"},
	{"User_02", "Editou laudo", "LA 000 SAD/XXX", "17/07/2025"},
}

type indicator struct {
	Title string
	Value string
	Sub   string
}

var indicators = []indicator{
	{"Total Sales", "¥ 126,560", "WoW Change 12%"},
	{"Visits", "8,846", "Daily Visits 1,224"},
	{"Payments", "6,560", "Conversion Rate 60%"},
	{"Operational Effect", "78%", "DoD Change"},
}

var chartTabs = []string{"Sales", "Visits"}

type configUser struct {
	ID         string
	Name       string
	Email      string
	Kind       string
	LastAccess string
	Accesses   string
}

var configUsers = []configUser{
	{"04", "Nome e sobrenome", "email4@sad.pe.gov.br", "Cadastro", "10/07/2025", "05"},
	{"03", "Nome e sobrenome", "email3@sad.pe.gov.br", "Gestão", "17/07/2025", "10"},
	{"02", "Nome e sobrenome", "email2@sad.pe.gov.br", "Cadastro", "15/07/2025", "02"},
	{"01", "Nome e sobrenome", "email1@sad.pe.gov.br", "Cadastro", "18/07/2025", "10"},
}

// loginEmails são os únicos e-mails oferecidos na tela de login.
var loginEmails = []string{
	"cadastro@sad.pe.gov.br",
	"gestor@sad.pe.gov.br",
	"admin@sad.pe.gov.br",
}

// pageContent agrega todo o conteúdo fixo para os templates.
type pageContent struct {
	EditRows      []editRow
	ReportFilters []filterField
	ReportRows    []reportRow
	UserActions   []userAction
	Indicators    []indicator
	ChartTabs     []string
	ConfigUsers   []configUser
	LoginEmails   []string
}

var content = pageContent{
	EditRows:      editRows,
	ReportFilters: reportFilters,
	ReportRows:    reportRows,
	UserActions:   userActions,
	Indicators:    indicators,
	ChartTabs:     chartTabs,
	ConfigUsers:   configUsers,
	LoginEmails:   loginEmails,
}
