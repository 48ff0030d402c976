package dto

import (
	"time"

	"github.com/okasc/intranet-api/internal/domain/entity"
	"github.com/okasc/intranet-api/pkg/validator"
)

// DateLayout formato de fechas en la API (solo día).
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse error 400 con el detalle por campo.
type ValidationErrorResponse struct {
	Code    string                     `json:"code"`
	Message string                     `json:"message"`
	Fields  []*validator.ErrorResponse `json:"fields"`
}

// Actor usuario autenticado que ejecuta la operación.
// El rol es el fijado en el login; nombre y cargo salen del directorio.
type Actor struct {
	UserID int64
	Name   string
	Title  string
	Role   entity.Role
}

// ListResponse lista simple con total.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewList construye la respuesta de lista.
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

// FormatDate fecha en DateLayout; cero = "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// ParseDate interpreta s en DateLayout (UTC).
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
