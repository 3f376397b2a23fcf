package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucrare/gestao-api/internal/application/dto"
	"github.com/lucrare/gestao-api/internal/application/usecase"
	"github.com/lucrare/gestao-api/pkg/logger"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	uc     *usecase.CustomerUseCase
	report *usecase.CustomerReportUseCase
	log    *logger.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, report *usecase.CustomerReportUseCase, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, report: report, log: log}
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        q            query  string  false  "razón social o CNPJ"
// @Param        active       query  bool    false  "filtrar por activo"
// @Param        companyType  query  string  false  "régimen tributario"
// @Param        limit        query  int     false  "máximo de resultados (0 = todos)"
// @Param        offset       query  int     false  "desplazamiento"
// @Success      200  {array}   dto.CustomerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var q dto.CustomerListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de consulta inválidos"})
	}
	list, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener cliente
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CustomerRequest  true  "datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         customers
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string               true  "ID del cliente"
// @Param        body  body  dto.CustomerRequest  true  "datos del cliente"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Update(c.UserContext(), c.Params("id"), in); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar cliente y sus comentarios (solo Administrator)
// @Tags         customers
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del cliente"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetPrincipal(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Report godoc
// @Summary      Reporte PDF de la cartera (solo Administrator)
// @Tags         customers
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/customers/report [get]
func (h *CustomerHandler) Report(c *fiber.Ctx) error {
	pdf, err := h.report.Generate(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="clientes.pdf"`)
	return c.Send(pdf)
}
