package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/application/usecase"
)

// NavigationHandler menú lateral y página activa.
type NavigationHandler struct {
	svc *usecase.NavigationService
}

// NewNavigationHandler construye el handler.
func NewNavigationHandler(svc *usecase.NavigationService) *NavigationHandler {
	return &NavigationHandler{svc: svc}
}

// Menu godoc
// @Summary      Menú filtrado por rol
// @Tags         navigation
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NavItemResponse
// @Router       /api/navigation [get]
func (h *NavigationHandler) Menu(c *fiber.Ctx) error {
	return c.JSON(h.svc.Menu(GetRole(c)))
}

// Active godoc
// @Summary      Página activa
// @Description  Si la página activa no está permitida se devuelve access_denied una vez y
// @Description  la navegación pasa a la primera página permitida.
// @Tags         navigation
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ActivePageResponse
// @Router       /api/navigation/active [get]
func (h *NavigationHandler) Active(c *fiber.Ctx) error {
	return c.JSON(h.svc.Render(GetUserID(c), GetRole(c)))
}

// Activate godoc
// @Summary      Cambiar de página
// @Tags         navigation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ActivatePageRequest  true  "page"
// @Success      200   {object}  dto.ActivePageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/navigation/active [put]
func (h *NavigationHandler) Activate(c *fiber.Ctx) error {
	var in dto.ActivatePageRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	userID := GetUserID(c)
	if err := h.svc.Activate(userID, in.Page); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.svc.Render(userID, GetRole(c)))
}
