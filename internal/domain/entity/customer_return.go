package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerReturnStatus estado de un protocolo de devolución (ZW).
type CustomerReturnStatus string

const (
	ReturnPending  CustomerReturnStatus = "Oczekuje na weryfikację"
	ReturnAccepted CustomerReturnStatus = "Zwrot przyjęty"
)

// ReturnItem posición devuelta con su motivo.
type ReturnItem struct {
	Lp       int
	Name     string
	Quantity decimal.Decimal
	Unit     string
	Reason   string
}

// CustomerReturn devolución de mercancía por parte de un cliente.
type CustomerReturn struct {
	ID               string
	DocNumber        string // ZW/YYYY/MM/NNN
	ReturnDate       time.Time
	Client           string
	OriginalWzNumber string // opcional: WZ al que se refiere
	Items            []ReturnItem
	ReceivedBy       string
	Status           CustomerReturnStatus
}
