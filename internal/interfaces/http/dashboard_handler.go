package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/okasc/intranet-api/internal/application/analytics"
)

// DashboardHandler maneja el Panel Główny.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve saludo, estadísticas rápidas y comunicados.
// GET /api/dashboard
//
// Los contadores se calculan en cada llamada sobre todos los registros.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext(), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
