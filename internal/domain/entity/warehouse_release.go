package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseReleaseStatus estado de un WZ (wydanie zewnętrzne).
type WarehouseReleaseStatus string

const (
	ReleaseTemporary WarehouseReleaseStatus = "Tymczasowe"
	ReleaseEntered   WarehouseReleaseStatus = "Wprowadzone do ERP"
)

// LineItem posición de un documento de almacén.
type LineItem struct {
	Lp       int // número de posición, desde 1
	Name     string
	Quantity decimal.Decimal
	Unit     string // "szt.", "m2", "kg"...
}

// WarehouseRelease documento de salida de mercancía (WZ).
// Flujo: Tymczasowe -> Wprowadzone do ERP, sin retorno.
type WarehouseRelease struct {
	ID               string
	DocNumber        string // WZ/YYYY/MM/NNN
	IssueDate        time.Time
	Client           string
	ConstructionSite string // opcional
	Items            []LineItem
	IssuedBy         string
	Notes            string
	Status           WarehouseReleaseStatus
}
