package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/lucrare/gestao-api/pkg/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// Migrator aplica el esquema embebido con goose sobre el pool de la app.
type Migrator struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewMigrator construye el runner de migraciones.
func NewMigrator(pool *pgxpool.Pool, log *logger.Logger) (*Migrator, error) {
	if pool == nil {
		return nil, errors.New("pool nil")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Migrator{pool: pool, log: log}, nil
}

// Up aplica las migraciones pendientes.
func (m *Migrator) Up(ctx context.Context) error {
	return m.withDB(ctx, func(ctx context.Context, db *sql.DB) error {
		m.log.Info().Msg("aplicando migraciones")
		if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("aplicar migraciones: %w", err)
		}
		return nil
	})
}

// Down revierte la última migración, o hasta targetVersion si es > 0.
func (m *Migrator) Down(ctx context.Context, targetVersion int64) error {
	return m.withDB(ctx, func(ctx context.Context, db *sql.DB) error {
		if targetVersion > 0 {
			m.log.Info().Int64("target", targetVersion).Msg("revirtiendo migraciones")
			if err := goose.DownToContext(ctx, db, migrationsDir, targetVersion); err != nil {
				return fmt.Errorf("revertir a versión %d: %w", targetVersion, err)
			}
			return nil
		}
		m.log.Info().Msg("revirtiendo última migración")
		if err := goose.DownContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("revertir última migración: %w", err)
		}
		return nil
	})
}

// Status imprime (vía logger) las migraciones aplicadas y pendientes.
func (m *Migrator) Status(ctx context.Context) error {
	return m.withDB(ctx, func(ctx context.Context, db *sql.DB) error {
		if err := goose.StatusContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("estado de migraciones: %w", err)
		}
		return nil
	})
}

func (m *Migrator) withDB(ctx context.Context, fn func(context.Context, *sql.DB) error) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(m.log)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("configurar goose: %w", err)
	}

	db := stdlib.OpenDBFromPool(m.pool)
	defer db.Close()

	runCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()
	return fn(runCtx, db)
}
