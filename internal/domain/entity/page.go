package entity

// Page vista navegable de la intranet; unidad de concesión de permisos.
type Page string

// Páginas de la intranet.
const (
	PageDashboard         Page = "dashboard"
	PageDocuments         Page = "documents"
	PageAssistant         Page = "assistant"
	PageWarehouseReleases Page = "warehouse-releases"
	PageServices          Page = "services"
	PageCustomerReturns   Page = "customer-returns"
	PageProduction        Page = "production"
	PageLeave             Page = "leave"
	PageTimeOff           Page = "time-off"
	PageUserManagement    Page = "user-management"
)

var pageLabels = map[Page]string{
	PageDashboard:         "Panel Główny",
	PageDocuments:         "Dokumenty",
	PageAssistant:         "Asystent AI",
	PageWarehouseReleases: "Wydania Magazynowe",
	PageServices:          "Usługi",
	PageCustomerReturns:   "Zwroty od Klientów",
	PageProduction:        "Produkcja",
	PageLeave:             "Urlopy",
	PageTimeOff:           "Wyjścia/Wejścia",
	PageUserManagement:    "Zarządzanie użytkownikami",
}

// Label nombre visible (polaco) de la página; vacío si es desconocida.
func (p Page) Label() string { return pageLabels[p] }

// Known indica si p es una página declarada.
func (p Page) Known() bool {
	_, ok := pageLabels[p]
	return ok
}

// NavItem entrada del menú lateral. Un grupo (Kadry) no es página: solo agrupa hijos.
type NavItem struct {
	Page     Page   // vacío si es grupo
	Group    string // identificador del grupo, vacío si es hoja
	Label    string
	Icon     string
	Children []NavItem
}

// IsGroup indica si el ítem agrupa subpáginas.
func (n NavItem) IsGroup() bool { return n.Group != "" }
