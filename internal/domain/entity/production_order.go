package entity

import "time"

// ProductionOrderStatus estado de una orden de mezcla (tintado) de producción.
type ProductionOrderStatus string

const (
	ProductionToDo ProductionOrderStatus = "Do zrobienia"
	ProductionDone ProductionOrderStatus = "Zrobione"
)

// Toggled devuelve el otro estado; la orden alterna entre los dos.
func (s ProductionOrderStatus) Toggled() ProductionOrderStatus {
	if s == ProductionDone {
		return ProductionToDo
	}
	return ProductionDone
}

// Paletas de color y tipos de producto admitidos.
var (
	Palettes     = []string{"Atlas", "Sempre", "Teluria", "Tikkurila", "Inna"}
	ProductTypes = []string{"Tynk", "Farba"}
)

// ProductionItem línea de una orden: qué mezclar y cuánto.
type ProductionItem struct {
	Lp          int
	Palette     string
	ProductType string
	Base        string
	Color       string
	Capacity    string // "25kg", "10L"
	Quantity    int
}

// ProductionOrder orden de producción (PROD).
type ProductionOrder struct {
	ID           string
	OrderNumber  string // PROD/YYYY/MM/NNN
	CreationDate time.Time
	Client       string
	Items        []ProductionItem
	CreatedBy    string
	Notes        string
	Status       ProductionOrderStatus
}
