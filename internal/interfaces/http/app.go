package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/lucrare/gestao-api/pkg/logger"
)

// AppConfig parámetros del servidor Fiber.
type AppConfig struct {
	Name        string
	CORSOrigins string // lista separada por comas; vacío = sin CORS
}

// NewApp crea la aplicación Fiber con el stack de middlewares común: recover, request id, log y CORS.
func NewApp(cfg AppConfig, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger(log))
	if origins := strings.TrimSpace(cfg.CORSOrigins); origins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: origins,
			AllowHeaders: "Origin, Content-Type, Accept, Authorization",
			AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		}))
	}
	return app
}
