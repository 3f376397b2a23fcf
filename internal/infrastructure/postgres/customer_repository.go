package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/lucrare/gestao-api/internal/domain"
	"github.com/lucrare/gestao-api/internal/domain/entity"
	"github.com/lucrare/gestao-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// contact_email NULL cuando no se informa: el índice único solo aplica a los informados.
const customerColumns = `id, tax_id, legal_name, active, company_type, annual_revenue,
	contact_name, COALESCE(contact_email, ''), contact_phone, fee_amount, created_at, updated_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, tax_id, legal_name, active, company_type, annual_revenue,
			contact_name, contact_email, contact_phone, fee_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.TaxID, c.LegalName, c.Active, string(c.CompanyType), c.AnnualRevenue,
		c.ContactName, c.ContactEmail, c.ContactPhone, c.FeeAmount, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if mapped := constraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

// GetByTaxID obtiene un cliente por CNPJ normalizado.
func (r *CustomerRepo) GetByTaxID(ctx context.Context, taxID string) (*entity.Customer, error) {
	return r.getOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE tax_id = $1`, taxID)
}

// GetByContactEmail obtiene un cliente por email de contacto.
func (r *CustomerRepo) GetByContactEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return r.getOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE contact_email = $1`, email)
}

func (r *CustomerRepo) getOne(ctx context.Context, query, arg string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// List lista clientes por razón social aplicando los filtros informados.
func (r *CustomerRepo) List(ctx context.Context, f repository.CustomerFilter) ([]*entity.Customer, error) {
	var (
		where []string
		args  []any
	)
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where = append(where, fmt.Sprintf("(legal_name ILIKE $%d OR tax_id LIKE $%d)", len(args), len(args)))
	}
	if f.Active != nil {
		args = append(args, *f.Active)
		where = append(where, fmt.Sprintf("active = $%d", len(args)))
	}
	if f.CompanyType != "" {
		args = append(args, string(f.CompanyType))
		where = append(where, fmt.Sprintf("company_type = $%d", len(args)))
	}
	query := `SELECT ` + customerColumns + ` FROM customers`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY legal_name, id`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza los campos mutables del cliente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	if !validID(c.ID) {
		return domain.ErrCustomerNotFound
	}
	query := `
		UPDATE customers SET tax_id = $2, legal_name = $3, active = $4, company_type = $5,
			annual_revenue = $6, contact_name = $7, contact_email = NULLIF($8, ''),
			contact_phone = $9, fee_amount = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.TaxID, c.LegalName, c.Active, string(c.CompanyType), c.AnnualRevenue,
		c.ContactName, c.ContactEmail, c.ContactPhone, c.FeeAmount, c.UpdatedAt,
	)
	if err != nil {
		if mapped := constraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrCustomerNotFound
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// Count total de clientes.
func (r *CustomerRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	var companyType string
	err := row.Scan(
		&c.ID, &c.TaxID, &c.LegalName, &c.Active, &companyType, &c.AnnualRevenue,
		&c.ContactName, &c.ContactEmail, &c.ContactPhone, &c.FeeAmount, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.CompanyType = entity.CompanyType(companyType)
	return &c, nil
}
