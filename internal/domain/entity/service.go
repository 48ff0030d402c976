package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service registro de un servicio en obra (montaje, medición, consultoría).
type Service struct {
	ID            string
	ClientName    string
	Location      string
	ServiceDate   time.Time
	DurationHours decimal.Decimal
	Kilometers    int
	Description   string
	AgreedPrice   *decimal.Decimal // nil = precio no pactado
	IsSettled     bool
	CreatedBy     string
}

// SettlementLabel texto del estado de liquidación.
func (s *Service) SettlementLabel() string {
	if s.IsSettled {
		return "Rozliczone"
	}
	return "Do rozliczenia"
}
