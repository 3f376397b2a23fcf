package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/lucrare/gestao-api/internal/domain/entity"
	"github.com/lucrare/gestao-api/internal/domain/repository"
)

// CustomerReportGenerator puerto para renderizar la cartera de clientes (implementado con Maroto).
type CustomerReportGenerator interface {
	GenerateCustomerReport(ctx context.Context, report CustomerReport) ([]byte, error)
}

// CustomerReport datos ya agregados que el generador solo debe dibujar.
type CustomerReport struct {
	Title       string
	GeneratedAt time.Time // en la zona de presentación
	Customers   []*entity.Customer
	ActiveCount int
}

// CustomerReportUseCase arma el reporte PDF de la cartera.
type CustomerReportUseCase struct {
	repo      repository.CustomerRepository
	generator CustomerReportGenerator
	loc       *time.Location
}

// NewCustomerReportUseCase construye el caso de uso.
func NewCustomerReportUseCase(repo repository.CustomerRepository, generator CustomerReportGenerator, loc *time.Location) *CustomerReportUseCase {
	if loc == nil {
		loc = DefaultDisplayLocation
	}
	return &CustomerReportUseCase{repo: repo, generator: generator, loc: loc}
}

// Generate devuelve el PDF con todos los clientes ordenados por razón social.
func (uc *CustomerReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	list, err := uc.repo.List(ctx, repository.CustomerFilter{})
	if err != nil {
		return nil, err
	}
	report := CustomerReport{
		Title:       "Cartera de clientes",
		GeneratedAt: time.Now().In(uc.loc),
		Customers:   list,
	}
	for _, c := range list {
		if c.Active {
			report.ActiveCount++
		}
	}
	pdf, err := uc.generator.GenerateCustomerReport(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("reporte de clientes: %w", err)
	}
	return pdf, nil
}
