package dto

import "github.com/shopspring/decimal"

// ProductionItemRequest línea de una orden de producción.
type ProductionItemRequest struct {
	Palette     string `json:"palette" validate:"required,oneof=Atlas Sempre Teluria Tikkurila Inna"`
	ProductType string `json:"product_type" validate:"required,oneof=Tynk Farba"`
	Base        string `json:"base" validate:"max=100"`
	Color       string `json:"color" validate:"notblank,max=100"`
	Capacity    string `json:"capacity" validate:"max=32"`
	Quantity    int    `json:"quantity" validate:"min=1"`
}

// CreateProductionOrderRequest alta de una orden PROD.
type CreateProductionOrderRequest struct {
	Client string                  `json:"client" validate:"notblank,max=255"`
	Items  []ProductionItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes  string                  `json:"notes" validate:"max=2000"`
}

// ProductionItemResponse línea de una orden.
type ProductionItemResponse struct {
	Lp          int    `json:"lp"`
	Palette     string `json:"palette"`
	ProductType string `json:"product_type"`
	Base        string `json:"base"`
	Color       string `json:"color"`
	Capacity    string `json:"capacity"`
	Quantity    int    `json:"quantity"`
}

// ProductionOrderResponse salida de una orden PROD.
type ProductionOrderResponse struct {
	ID           string                   `json:"id"`
	OrderNumber  string                   `json:"order_number"`
	CreationDate string                   `json:"creation_date"`
	Client       string                   `json:"client"`
	Items        []ProductionItemResponse `json:"items"`
	CreatedBy    string                   `json:"created_by"`
	Notes        string                   `json:"notes,omitempty"`
	Status       string                   `json:"status"`
}

// CreateServiceRequest alta de un servicio.
type CreateServiceRequest struct {
	ClientName    string           `json:"client_name" validate:"notblank,max=255"`
	Location      string           `json:"location" validate:"notblank,max=255"`
	ServiceDate   string           `json:"service_date" validate:"required,datetime=2006-01-02"`
	DurationHours decimal.Decimal  `json:"duration_hours"`
	Kilometers    int              `json:"kilometers" validate:"min=0"`
	Description   string           `json:"description" validate:"notblank,max=2000"`
	AgreedPrice   *decimal.Decimal `json:"agreed_price"`
}

// ServiceResponse salida de un servicio.
type ServiceResponse struct {
	ID              string           `json:"id"`
	ClientName      string           `json:"client_name"`
	Location        string           `json:"location"`
	ServiceDate     string           `json:"service_date"`
	DurationHours   decimal.Decimal  `json:"duration_hours"`
	Kilometers      int              `json:"kilometers"`
	Description     string           `json:"description"`
	AgreedPrice     *decimal.Decimal `json:"agreed_price,omitempty"`
	IsSettled       bool             `json:"is_settled"`
	SettlementLabel string           `json:"settlement_label"`
	CreatedBy       string           `json:"created_by"`
}
