package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okasc/intranet-api/internal/application/auth"
	"github.com/okasc/intranet-api/internal/application/dto"
)

// navigationResetter lo implementa *usecase.NavigationService.
type navigationResetter interface {
	Reset(userID int64)
}

// AuthHandler maneja el selector de usuario, login y logout.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	nav navigationResetter
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, nav navigationResetter) *AuthHandler {
	return &AuthHandler{uc: uc, nav: nav}
}

// Users godoc
// @Summary      Usuarios del selector de login
// @Tags         auth
// @Produce      json
// @Success      200  {array}  dto.LoginUserOption
// @Router       /api/auth/users [get]
func (h *AuthHandler) Users(c *fiber.Ctx) error {
	out, err := h.uc.LoginUsers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Verifica la contraseña del usuario elegido y devuelve el JWT. La página activa vuelve al Panel Główny.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "user_id, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	h.nav.Reset(out.User.ID)
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  El JWT no se revoca (caduca solo); se reinicia la navegación del usuario.
// @Tags         auth
// @Security     Bearer
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.nav.Reset(GetUserID(c))
	return c.SendStatus(fiber.StatusNoContent)
}
