package dto

// NavItemResponse entrada del menú lateral.
type NavItemResponse struct {
	Page     string            `json:"page,omitempty"`
	Group    string            `json:"group,omitempty"`
	Label    string            `json:"label"`
	Icon     string            `json:"icon"`
	Children []NavItemResponse `json:"children,omitempty"`
}

// ActivatePageRequest cambio de página activa.
type ActivatePageRequest struct {
	Page string `json:"page" validate:"required"`
}

// ActivePageResponse resultado de un render del enrutador de páginas.
type ActivePageResponse struct {
	Page      string `json:"page"`
	Label     string `json:"label"`
	Denied    bool   `json:"access_denied"`
	Requested string `json:"requested"`
}
