package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/lucrare/gestao-api/docs"
	"github.com/lucrare/gestao-api/internal/application/auth"
	"github.com/lucrare/gestao-api/internal/application/usecase"
	"github.com/lucrare/gestao-api/internal/domain/repository"
	"github.com/lucrare/gestao-api/internal/infrastructure/memory"
	infrapdf "github.com/lucrare/gestao-api/internal/infrastructure/pdf"
	"github.com/lucrare/gestao-api/internal/infrastructure/postgres"
	httpRouter "github.com/lucrare/gestao-api/internal/interfaces/http"
	"github.com/lucrare/gestao-api/pkg/config"
	"github.com/lucrare/gestao-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.DB.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
		log.Warn().Msg("JWT_SECRET vacío, usando secreto de desarrollo")
	}

	ctx := context.Background()

	var (
		userRepo     repository.UserRepository
		customerRepo repository.CustomerRepository
		commentRepo  repository.CommentRepository
		txRunner     repository.TxRunner
	)
	switch cfg.DB.Driver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		userRepo = store.Users()
		customerRepo = store.Customers()
		commentRepo = store.Comments()
		txRunner = store.TxRunner()
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if cfg.DB.AutoMigrate {
			migrator, err := postgres.NewMigrator(pool, log)
			if err != nil {
				log.Fatal().Err(err).Msg("inicializar migraciones")
			}
			if err := migrator.Up(ctx); err != nil {
				log.Fatal().Err(err).Msg("aplicar migraciones")
			}
		}

		userRepo = postgres.NewUserRepository(pool)
		customerRepo = postgres.NewCustomerRepository(pool)
		commentRepo = postgres.NewCommentRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	loc := cfg.Display.Location()

	userUC := usecase.NewUserUseCase(userRepo, commentRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, txRunner)
	commentUC := usecase.NewCommentUseCase(commentRepo, customerRepo, userRepo, loc)
	statusUC := usecase.NewStatusUseCase(cfg.DB.Driver, userRepo, customerRepo, commentRepo)

	// PDF: listado de la cartera de clientes
	reportUC := usecase.NewCustomerReportUseCase(customerRepo, infrapdf.NewMarotoCustomerReport(cfg.App.Name), loc)

	authUC := auth.NewAuthUseCase(userRepo, userUC, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	}, log)

	docs.SwaggerInfo.Version = cfg.App.Version
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		c.Type("json")
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "Gestão API",
		}))
	} else if cfg.App.SwaggerFile != "" {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		CustomerUC: customerUC,
		CommentUC:  commentUC,
		ReportUC:   reportUC,
		StatusUC:   statusUC,
		Service: httpRouter.ServiceInfo{
			Name:        cfg.App.Name,
			Version:     cfg.App.Version,
			Environment: cfg.App.Env,
		},
		JWTSecret: cfg.JWT.Secret,
		Log:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
