package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lucrare/gestao-api/internal/application/dto"
	"github.com/lucrare/gestao-api/internal/domain"
	"github.com/lucrare/gestao-api/pkg/logger"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// El orden importa: las variantes concretas van antes que el sentinel que envuelven.
var errorMappings = []errorMapping{
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "usuario o contraseña inválidos"},
	{domain.ErrUnauthenticated, fiber.StatusUnauthorized, "UNAUTHORIZED", "autenticación requerida"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "no tiene permiso para esta operación"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "USER_NOT_FOUND", "usuario no encontrado"},
	{domain.ErrCustomerNotFound, fiber.StatusNotFound, "CUSTOMER_NOT_FOUND", "cliente no encontrado"},
	{domain.ErrCommentNotFound, fiber.StatusNotFound, "COMMENT_NOT_FOUND", "comentario no encontrado"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado"},
	{domain.ErrDuplicateUsername, fiber.StatusBadRequest, "DUPLICATE_USERNAME", "el nombre de usuario ya existe"},
	{domain.ErrDuplicateEmail, fiber.StatusBadRequest, "DUPLICATE_EMAIL", "el email ya está registrado"},
	{domain.ErrDuplicateTaxID, fiber.StatusBadRequest, "DUPLICATE_TAX_ID", "ya existe un cliente con ese CNPJ"},
	{domain.ErrDuplicateContactEmail, fiber.StatusBadRequest, "DUPLICATE_CONTACT_EMAIL", "ya existe un cliente con ese email de contacto"},
	{domain.ErrDuplicate, fiber.StatusBadRequest, "DUPLICATE", "recurso duplicado"},
	{domain.ErrHasDependentComments, fiber.StatusBadRequest, "HAS_DEPENDENT_COMMENTS", "el usuario tiene comentarios asociados; elimínelos primero"},
}

// respondError traduce un error de la aplicación a dto.ErrorResponse.
// Los errores no previstos se registran con detalle y se responden con un 500 genérico.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Details: verr.Fields})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: m.message})
		}
	}
	log.Error().
		Err(err).
		Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// ErrorHandler para fiber.Config: errores que escapan de los handlers salen con el mismo formato.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: httpCode(fe.Code), Message: fe.Message})
		}
		return respondError(c, log, err)
	}
}

func httpCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	default:
		if status >= 500 {
			return "INTERNAL"
		}
		return "BAD_REQUEST"
	}
}
