package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/application/usecase"
)

const (
	contentTypePDF = "application/pdf"
	contentTypeXML = "application/xml; charset=utf-8"
)

// WarehouseHandler maneja Wydania Magazynowe (WZ) y sus versiones imprimibles.
type WarehouseHandler struct {
	uc    *usecase.WarehouseReleaseUseCase
	print *usecase.PrintUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseReleaseUseCase, print *usecase.PrintUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc, print: print}
}

// Create godoc
// @Summary      Crear WZ
// @Description  Asigna el número WZ/AAAA/MM/NNN y queda en estado Tymczasowe. Wystawił = usuario del token.
// @Tags         warehouse-releases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseReleaseRequest  true  "Cliente, obra y posiciones"
// @Success      201   {object}  dto.WarehouseReleaseResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/warehouse-releases [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWarehouseReleaseRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener WZ por ID
// @Tags         warehouse-releases
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del WZ"
// @Success      200  {object}  dto.WarehouseReleaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse-releases/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar WZ (más reciente primero)
// @Tags         warehouse-releases
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.WarehouseReleaseResponse]
// @Router       /api/warehouse-releases [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

// MarkEntered godoc
// @Summary      Marcar WZ como introducido en el ERP
// @Description  Un WZ ya introducido se devuelve sin cambios.
// @Tags         warehouse-releases
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del WZ"
// @Success      200  {object}  dto.WarehouseReleaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse-releases/{id}/enter [post]
func (h *WarehouseHandler) MarkEntered(c *fiber.Ctx) error {
	out, err := h.uc.MarkEntered(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Imprimir WZ
// @Tags         warehouse-releases
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del WZ"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse-releases/{id}/pdf [get]
func (h *WarehouseHandler) PDF(c *fiber.Ctx) error {
	doc, err := h.print.WarehouseReleasePDF(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, contentTypePDF, doc.Filename, doc.Content)
}

// ERPXML godoc
// @Summary      Exportar WZ al XML del ERP
// @Tags         warehouse-releases
// @Security     Bearer
// @Produce      application/xml
// @Param        id   path  string  true  "ID del WZ"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse-releases/{id}/erp.xml [get]
func (h *WarehouseHandler) ERPXML(c *fiber.Ctx) error {
	doc, err := h.print.WarehouseReleaseXML(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, contentTypeXML, doc.Filename, doc.Content)
}
