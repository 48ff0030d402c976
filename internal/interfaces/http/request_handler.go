package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/application/usecase"
	"github.com/okasc/intranet-api/internal/domain/entity"
)

// RequestHandler solicitudes de Kadry: vacaciones (Urlopy) y salidas/entradas (Wyjścia).
// Admin y Manager ven y deciden todas; Pracownik solo ve las suyas.
type RequestHandler struct {
	leave   *usecase.LeaveUseCase
	timeOff *usecase.TimeOffUseCase
}

// NewRequestHandler construye el handler.
func NewRequestHandler(leave *usecase.LeaveUseCase, timeOff *usecase.TimeOffUseCase) *RequestHandler {
	return &RequestHandler{leave: leave, timeOff: timeOff}
}

// ListLeave godoc
// @Summary      Listar solicitudes de vacaciones
// @Tags         leave
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.LeaveRequestResponse]
// @Router       /api/leave-requests [get]
func (h *RequestHandler) ListLeave(c *fiber.Ctx) error {
	out, err := h.leave.List(GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

// CreateLeave godoc
// @Summary      Solicitar vacaciones
// @Tags         leave
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeaveRequest  true  "Tipo, fechas y comentario"
// @Success      201   {object}  dto.LeaveRequestResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/leave-requests [post]
func (h *RequestHandler) CreateLeave(c *fiber.Ctx) error {
	var in dto.CreateLeaveRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	out, err := h.leave.Create(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ApproveLeave godoc
// @Summary      Aprobar vacaciones
// @Tags         leave
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.LeaveRequestResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/leave-requests/{id}/approve [post]
func (h *RequestHandler) ApproveLeave(c *fiber.Ctx) error {
	return h.decideLeave(c, entity.RequestApproved)
}

// RejectLeave POST /api/leave-requests/:id/reject
func (h *RequestHandler) RejectLeave(c *fiber.Ctx) error {
	return h.decideLeave(c, entity.RequestRejected)
}

func (h *RequestHandler) decideLeave(c *fiber.Ctx, status entity.RequestStatus) error {
	out, err := h.leave.Decide(GetActor(c), c.Params("id"), status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListTimeOff godoc
// @Summary      Listar salidas anticipadas / llegadas tarde
// @Tags         time-off
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.TimeOffRequestResponse]
// @Router       /api/time-off-requests [get]
func (h *RequestHandler) ListTimeOff(c *fiber.Ctx) error {
	out, err := h.timeOff.List(GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

// CreateTimeOff godoc
// @Summary      Solicitar salida anticipada / llegada tarde
// @Tags         time-off
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTimeOffRequest  true  "Tipo, fecha, hora y motivo"
// @Success      201   {object}  dto.TimeOffRequestResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/time-off-requests [post]
func (h *RequestHandler) CreateTimeOff(c *fiber.Ctx) error {
	var in dto.CreateTimeOffRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	out, err := h.timeOff.Create(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ApproveTimeOff POST /api/time-off-requests/:id/approve
func (h *RequestHandler) ApproveTimeOff(c *fiber.Ctx) error {
	return h.decideTimeOff(c, entity.RequestApproved)
}

// RejectTimeOff POST /api/time-off-requests/:id/reject
func (h *RequestHandler) RejectTimeOff(c *fiber.Ctx) error {
	return h.decideTimeOff(c, entity.RequestRejected)
}

func (h *RequestHandler) decideTimeOff(c *fiber.Ctx, status entity.RequestStatus) error {
	out, err := h.timeOff.Decide(GetActor(c), c.Params("id"), status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
