package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucrare/gestao-api/internal/application/dto"
	"github.com/lucrare/gestao-api/internal/application/usecase"
	"github.com/lucrare/gestao-api/pkg/logger"
)

// CommentHandler maneja los comentarios sobre clientes.
type CommentHandler struct {
	uc  *usecase.CommentUseCase
	log *logger.Logger
}

// NewCommentHandler construye el handler.
func NewCommentHandler(uc *usecase.CommentUseCase, log *logger.Logger) *CommentHandler {
	return &CommentHandler{uc: uc, log: log}
}

// ListByCustomer godoc
// @Summary      Comentarios de un cliente (más nuevos primero)
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        customerId  path  string  true  "ID del cliente"
// @Success      200  {array}   dto.CommentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/comments/customer/{customerId} [get]
func (h *CommentHandler) ListByCustomer(c *fiber.Ctx) error {
	list, err := h.uc.ListByCustomer(c.UserContext(), GetPrincipal(c), c.Params("customerId"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Comentar un cliente
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCommentRequest  true  "customerId, text"
// @Success      200   {object}  dto.CommentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCommentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar comentario (solo el autor)
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "ID del comentario"
// @Param        body  body  dto.UpdateCommentRequest  true  "text"
// @Success      200   {object}  dto.CommentResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/comments/{id} [put]
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCommentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar comentario (autor o Administrator)
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del comentario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/comments/{id} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetPrincipal(c), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "comentario eliminado"})
}
