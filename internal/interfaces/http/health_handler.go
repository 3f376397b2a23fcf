package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lucrare/gestao-api/internal/application/dto"
	"github.com/lucrare/gestao-api/internal/application/usecase"
	"github.com/lucrare/gestao-api/pkg/logger"
)

// ServiceInfo datos estáticos que devuelve /health.
type ServiceInfo struct {
	Name        string
	Version     string
	Environment string
}

// HealthHandler liveness y estado de datos.
type HealthHandler struct {
	info   ServiceInfo
	status *usecase.StatusUseCase
	log    *logger.Logger
}

// NewHealthHandler construye el handler.
func NewHealthHandler(info ServiceInfo, status *usecase.StatusUseCase, log *logger.Logger) *HealthHandler {
	return &HealthHandler{info: info, status: status, log: log}
}

// Health godoc
// @Summary      Liveness
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:      "ok",
		Service:     h.info.Name,
		Version:     h.info.Version,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.info.Environment,
	})
}

// DataStatus godoc
// @Summary      Conteos de datos
// @Tags         health
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DataStatusResponse
// @Router       /api/status [get]
func (h *HealthHandler) DataStatus(c *fiber.Ctx) error {
	out, err := h.status.DataStatus(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
