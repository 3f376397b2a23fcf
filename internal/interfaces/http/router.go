package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucrare/gestao-api/internal/application/auth"
	"github.com/lucrare/gestao-api/internal/application/usecase"
	"github.com/lucrare/gestao-api/internal/domain/entity"
	"github.com/lucrare/gestao-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	CustomerUC *usecase.CustomerUseCase
	CommentUC  *usecase.CommentUseCase
	ReportUC   *usecase.CustomerReportUseCase
	StatusUC   *usecase.StatusUseCase
	Service    ServiceInfo
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	healthHandler := NewHealthHandler(deps.Service, deps.StatusUC, log)
	app.Get("/health", healthHandler.Health)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/status", healthHandler.DataStatus)

	// Customers; /report se registra antes de /:id
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.ReportUC, log)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/report", RequireRole(string(entity.TierAdministrator)), customerHandler.Report)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Comments
	comments := protected.Group("/comments")
	commentHandler := NewCommentHandler(deps.CommentUC, log)
	comments.Get("/customer/:customerId", commentHandler.ListByCustomer)
	comments.Post("/", commentHandler.Create)
	comments.Put("/:id", commentHandler.Update)
	comments.Delete("/:id", commentHandler.Delete)

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, log)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
