package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/application/usecase"
)

// CustomerReturnHandler maneja Zwroty od Klienta (ZW).
type CustomerReturnHandler struct {
	uc    *usecase.CustomerReturnUseCase
	print *usecase.PrintUseCase
}

// NewCustomerReturnHandler construye el handler.
func NewCustomerReturnHandler(uc *usecase.CustomerReturnUseCase, print *usecase.PrintUseCase) *CustomerReturnHandler {
	return &CustomerReturnHandler{uc: uc, print: print}
}

// Create godoc
// @Summary      Registrar ZW
// @Tags         customer-returns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerReturnRequest  true  "Cliente, WZ original y posiciones"
// @Success      201   {object}  dto.CustomerReturnResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/customer-returns [post]
func (h *CustomerReturnHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerReturnRequest
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
// @Summary      Obtener ZW por ID
// @Tags         customer-returns
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ZW"
// @Success      200  {object}  dto.CustomerReturnResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customer-returns/{id} [get]
func (h *CustomerReturnHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ZW
// @Tags         customer-returns
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.CustomerReturnResponse]
// @Router       /api/customer-returns [get]
func (h *CustomerReturnHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(out))
}

// Accept godoc
// @Summary      Aceptar devolución
// @Tags         customer-returns
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ZW"
// @Success      200  {object}  dto.CustomerReturnResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customer-returns/{id}/accept [post]
func (h *CustomerReturnHandler) Accept(c *fiber.Ctx) error {
	out, err := h.uc.Accept(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF imprime el ZW.
// GET /api/customer-returns/:id/pdf
func (h *CustomerReturnHandler) PDF(c *fiber.Ctx) error {
	doc, err := h.print.CustomerReturnPDF(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, contentTypePDF, doc.Filename, doc.Content)
}

// ERPXML exporta el ZW para el ERP.
// GET /api/customer-returns/:id/erp.xml
func (h *CustomerReturnHandler) ERPXML(c *fiber.Ctx) error {
	doc, err := h.print.CustomerReturnXML(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, contentTypeXML, doc.Filename, doc.Content)
}
