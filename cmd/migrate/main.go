// migrate aplica o revierte el esquema embebido.
//
// Uso: go run ./cmd/migrate -command up|down|status [-target N]
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/lucrare/gestao-api/internal/infrastructure/postgres"
	"github.com/lucrare/gestao-api/pkg/config"
	"github.com/lucrare/gestao-api/pkg/logger"
)

func main() {
	command := flag.String("command", "up", "comando de migración (up|down|status)")
	timeout := flag.Duration("timeout", time.Minute, "timeout del comando")
	target := flag.Int64("target", 0, "versión destino para down (opcional)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		os.Exit(1)
	}
	defer pool.Close()

	migrator, err := postgres.NewMigrator(pool, log)
	if err != nil {
		log.Error().Err(err).Msg("configurar migraciones")
		os.Exit(1)
	}

	switch *command {
	case "up":
		err = migrator.Up(ctx)
	case "down":
		err = migrator.Down(ctx, *target)
	case "status":
		err = migrator.Status(ctx)
	default:
		log.Error().Str("command", *command).Msg("comando no soportado")
		os.Exit(1)
	}
	if err != nil {
		log.Error().Err(err).Str("command", *command).Msg("migración fallida")
		os.Exit(1)
	}
	log.Info().Str("command", *command).Msg("migración completada")
}
