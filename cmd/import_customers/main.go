// import_customers carga clientes desde una exportación CSV separada por ';'
// (UTF-8 o ISO-8859-1). Cada fila pasa por las mismas validaciones que la API.
//
// Uso: go run ./cmd/import_customers [-dry-run] clientes.csv
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/lucrare/gestao-api/internal/application/usecase"
	"github.com/lucrare/gestao-api/internal/domain"
	"github.com/lucrare/gestao-api/internal/infrastructure/csvimport"
	"github.com/lucrare/gestao-api/internal/infrastructure/memory"
	"github.com/lucrare/gestao-api/internal/infrastructure/postgres"
	"github.com/lucrare/gestao-api/pkg/config"
	"github.com/lucrare/gestao-api/pkg/logger"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "solo valida el archivo, no escribe en la base")
	skipDuplicates := flag.Bool("skip-duplicates", true, "ignora filas cuyo CNPJ o email ya existen")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: import_customers [-dry-run] archivo.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	rows, err := csvimport.ReadCustomers(f)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	ctx := context.Background()
	var customers *usecase.CustomerUseCase
	if *dryRun {
		// Store en memoria: valida reglas y duplicados dentro del archivo sin tocar la base.
		store := memory.NewStore()
		customers = usecase.NewCustomerUseCase(store.Customers(), store.TxRunner())
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		customers = usecase.NewCustomerUseCase(postgres.NewCustomerRepository(pool), postgres.NewTxRunner(pool))
	}

	var created, skipped, failed int
	for _, r := range rows {
		if r.Err != nil {
			failed++
			log.Warn().Int("line", r.Line).Err(r.Err).Msg("fila inválida")
			continue
		}
		_, err := customers.Create(ctx, r.Request)
		switch {
		case err == nil:
			created++
		case *skipDuplicates && errors.Is(err, domain.ErrDuplicate):
			skipped++
			log.Info().Int("line", r.Line).Str("tax_id", r.Request.TaxID).Msg("cliente existente, se omite")
		default:
			failed++
			log.Warn().Int("line", r.Line).Err(err).Msg("fila rechazada")
		}
	}
	log.Info().Int("created", created).Int("skipped", skipped).Int("failed", failed).Bool("dry_run", *dryRun).Msg("importación completada")
	if failed > 0 {
		os.Exit(1)
	}
}
