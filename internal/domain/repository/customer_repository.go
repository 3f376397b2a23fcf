package repository

import (
	"context"

	"github.com/lucrare/gestao-api/internal/domain/entity"
)

// CustomerFilter filtros opcionales del listado. Limit 0 = sin límite.
type CustomerFilter struct {
	Search      string // coincide con razón social o CNPJ
	Active      *bool
	CompanyType entity.CompanyType
	Limit       int
	Offset      int
}

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	// Create devuelve domain.ErrDuplicateTaxID / ErrDuplicateContactEmail si choca con el índice único.
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	GetByTaxID(ctx context.Context, taxID string) (*entity.Customer, error)
	GetByContactEmail(ctx context.Context, email string) (*entity.Customer, error)
	List(ctx context.Context, filter CustomerFilter) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
