package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lucrare/gestao-api/internal/application/dto"
	"github.com/lucrare/gestao-api/internal/domain"
	"github.com/lucrare/gestao-api/internal/domain/authz"
	"github.com/lucrare/gestao-api/internal/domain/entity"
	"github.com/lucrare/gestao-api/internal/domain/repository"
	"github.com/lucrare/gestao-api/pkg/cnpj"
)

// CustomerUseCase casos de uso del registro de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	tx   repository.TxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, tx repository.TxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, tx: tx}
}

// Create valida y persiste un nuevo cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := customerFromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.checkUnique(ctx, "", customer.TaxID, customer.ContactEmail); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	customer.ID = uuid.New().String()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	if in.Active == nil {
		customer.Active = true
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Update reemplaza los campos mutables de un cliente existente.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerRequest) error {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrCustomerNotFound
	}
	next, err := customerFromRequest(in)
	if err != nil {
		return err
	}
	if err := uc.checkUnique(ctx, id, next.TaxID, next.ContactEmail); err != nil {
		return err
	}
	next.ID = current.ID
	next.CreatedAt = current.CreatedAt
	next.UpdatedAt = time.Now().UTC()
	if in.Active == nil {
		next.Active = current.Active
	}
	return uc.repo.Update(ctx, next)
}

// Delete elimina un cliente y, en la misma transacción, todos sus comentarios. Solo Administrator.
func (uc *CustomerUseCase) Delete(ctx context.Context, caller authz.Principal, id string) error {
	// La política se evalúa antes de mirar si el cliente existe.
	if err := authz.Authorize(authz.CustomerDelete, caller, ""); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(customers repository.CustomerRepository, comments repository.CommentRepository) error {
		customer, err := customers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrCustomerNotFound
		}
		if _, err := comments.DeleteByCustomer(ctx, id); err != nil {
			return err
		}
		return customers.Delete(ctx, id)
	})
}

// GetByID obtiene un cliente.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return toCustomerResponse(c), nil
}

// List lista clientes aplicando filtros opcionales.
func (uc *CustomerUseCase) List(ctx context.Context, q dto.CustomerListQuery) ([]*dto.CustomerResponse, error) {
	filter, err := customerFilterFromQuery(q)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func (uc *CustomerUseCase) checkUnique(ctx context.Context, excludeID, taxID, contactEmail string) error {
	existing, err := uc.repo.GetByTaxID(ctx, taxID)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return domain.ErrDuplicateTaxID
	}
	if contactEmail == "" {
		return nil
	}
	existing, err = uc.repo.GetByContactEmail(ctx, contactEmail)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return domain.ErrDuplicateContactEmail
	}
	return nil
}

// customerFromRequest valida la entrada y arma la entidad (sin ID ni timestamps).
func customerFromRequest(in dto.CustomerRequest) (*entity.Customer, error) {
	in.TaxID = strings.TrimSpace(in.TaxID)
	in.LegalName = strings.TrimSpace(in.LegalName)
	in.ContactName = strings.TrimSpace(in.ContactName)
	in.ContactEmail = normalizeEmail(in.ContactEmail)
	in.ContactPhone = strings.TrimSpace(in.ContactPhone)

	verr := &domain.ValidationError{}
	if err := dto.Validate(in); err != nil {
		if !errors.As(err, &verr) {
			return nil, err
		}
	}
	if _, bad := verr.Fields["taxId"]; !bad {
		if err := cnpj.Validate(in.TaxID); err != nil {
			verr.Add("taxId", "CNPJ inválido")
		}
	}
	if in.AnnualRevenue != nil && in.AnnualRevenue.IsNegative() {
		verr.Add("annualRevenue", "debe ser mayor o igual a 0")
	}
	if in.FeeAmount != nil && in.FeeAmount.IsNegative() {
		verr.Add("feeAmount", "debe ser mayor o igual a 0")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	companyType, _ := entity.ParseCompanyType(in.CompanyType)
	c := &entity.Customer{
		TaxID:         cnpj.Normalize(in.TaxID),
		LegalName:     in.LegalName,
		CompanyType:   companyType,
		AnnualRevenue: roundMoney(in.AnnualRevenue),
		ContactName:   in.ContactName,
		ContactEmail:  in.ContactEmail,
		ContactPhone:  in.ContactPhone,
		FeeAmount:     roundMoney(in.FeeAmount),
	}
	if in.Active != nil {
		c.Active = *in.Active
	}
	return c, nil
}

func customerFilterFromQuery(q dto.CustomerListQuery) (repository.CustomerFilter, error) {
	f := repository.CustomerFilter{
		Search: strings.TrimSpace(q.Search),
		Limit:  q.Limit,
		Offset: q.Offset,
	}
	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	if q.Active != "" {
		b, err := strconv.ParseBool(q.Active)
		if err != nil {
			return f, domain.NewValidationError("active", "debe ser true o false")
		}
		f.Active = &b
	}
	if q.CompanyType != "" {
		t, ok := entity.ParseCompanyType(q.CompanyType)
		if !ok {
			return f, domain.NewValidationError("companyType", "tipo de empresa desconocido")
		}
		f.CompanyType = t
	}
	return f, nil
}

// roundMoney redondea a 2 decimales (columnas NUMERIC(15,2) / (10,2)).
func roundMoney(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	r := d.Round(2)
	return &r
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:            c.ID,
		TaxID:         c.TaxID,
		LegalName:     c.LegalName,
		Active:        c.Active,
		CompanyType:   string(c.CompanyType),
		AnnualRevenue: c.AnnualRevenue,
		ContactName:   c.ContactName,
		ContactEmail:  c.ContactEmail,
		ContactPhone:  c.ContactPhone,
		FeeAmount:     c.FeeAmount,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
