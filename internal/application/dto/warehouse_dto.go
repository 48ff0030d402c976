package dto

import "github.com/shopspring/decimal"

// LineItemRequest posición de WZ en el formulario.
type LineItemRequest struct {
	Name     string          `json:"name" validate:"notblank,max=255"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit" validate:"notblank,max=16"`
}

// CreateWarehouseReleaseRequest alta de un WZ. Número, fecha, emisor y estado los pone el servidor.
type CreateWarehouseReleaseRequest struct {
	Client           string            `json:"client" validate:"notblank,max=255"`
	ConstructionSite string            `json:"construction_site" validate:"max=255"`
	Items            []LineItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes            string            `json:"notes" validate:"max=2000"`
}

// LineItemResponse posición de un WZ.
type LineItemResponse struct {
	Lp       int             `json:"lp"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

// WarehouseReleaseResponse salida de un WZ.
type WarehouseReleaseResponse struct {
	ID               string             `json:"id"`
	DocNumber        string             `json:"doc_number"`
	IssueDate        string             `json:"issue_date"`
	Client           string             `json:"client"`
	ConstructionSite string             `json:"construction_site,omitempty"`
	Items            []LineItemResponse `json:"items"`
	IssuedBy         string             `json:"issued_by"`
	Notes            string             `json:"notes,omitempty"`
	Status           string             `json:"status"`
}

// ReturnItemRequest posición devuelta.
type ReturnItemRequest struct {
	Name     string          `json:"name" validate:"notblank,max=255"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit" validate:"notblank,max=16"`
	Reason   string          `json:"reason" validate:"notblank,max=500"`
}

// CreateCustomerReturnRequest alta de un protocolo ZW.
type CreateCustomerReturnRequest struct {
	Client           string              `json:"client" validate:"notblank,max=255"`
	OriginalWzNumber string              `json:"original_wz_number" validate:"max=32"`
	Items            []ReturnItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ReturnItemResponse posición de un ZW.
type ReturnItemResponse struct {
	Lp       int             `json:"lp"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Reason   string          `json:"reason"`
}

// CustomerReturnResponse salida de un ZW.
type CustomerReturnResponse struct {
	ID               string               `json:"id"`
	DocNumber        string               `json:"doc_number"`
	ReturnDate       string               `json:"return_date"`
	Client           string               `json:"client"`
	OriginalWzNumber string               `json:"original_wz_number,omitempty"`
	Items            []ReturnItemResponse `json:"items"`
	ReceivedBy       string               `json:"received_by"`
	Status           string               `json:"status"`
}
