package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/lucrare/gestao-api/internal/domain"
	"github.com/lucrare/gestao-api/internal/domain/entity"
	"github.com/lucrare/gestao-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo clientes en memoria.
type CustomerRepo struct {
	s *Store
}

func (r *CustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkUnique(c); err != nil {
		return err
	}
	r.s.customers[c.ID] = *c
	return nil
}

func (r *CustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if c, ok := r.s.customers[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *CustomerRepo) GetByTaxID(_ context.Context, taxID string) (*entity.Customer, error) {
	return r.find(func(c entity.Customer) bool { return c.TaxID == taxID }), nil
}

func (r *CustomerRepo) GetByContactEmail(_ context.Context, email string) (*entity.Customer, error) {
	if email == "" {
		return nil, nil
	}
	return r.find(func(c entity.Customer) bool { return c.ContactEmail == email }), nil
}

func (r *CustomerRepo) List(_ context.Context, f repository.CustomerFilter) ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	search := strings.ToLower(f.Search)
	list := make([]*entity.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		if search != "" && !strings.Contains(strings.ToLower(c.LegalName), search) && !strings.Contains(c.TaxID, search) {
			continue
		}
		if f.Active != nil && c.Active != *f.Active {
			continue
		}
		if f.CompanyType != "" && c.CompanyType != f.CompanyType {
			continue
		}
		c := c
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].LegalName != list[j].LegalName {
			return list[i].LegalName < list[j].LegalName
		}
		return list[i].ID < list[j].ID
	})
	if f.Offset > 0 {
		if f.Offset >= len(list) {
			return []*entity.Customer{}, nil
		}
		list = list[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(list) {
		list = list[:f.Limit]
	}
	return list, nil
}

func (r *CustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[c.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	if err := r.checkUnique(c); err != nil {
		return err
	}
	r.s.customers[c.ID] = *c
	return nil
}

// Delete borra el cliente y sus comentarios (equivalente al ON DELETE CASCADE).
func (r *CustomerRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	for cid, c := range r.s.comments {
		if c.CustomerID == id {
			delete(r.s.comments, cid)
		}
	}
	delete(r.s.customers, id)
	return nil
}

func (r *CustomerRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.customers), nil
}

func (r *CustomerRepo) find(match func(entity.Customer) bool) *entity.Customer {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.customers {
		if match(c) {
			return &c
		}
	}
	return nil
}

// checkUnique requiere r.s.mu tomado. Email de contacto vacío no participa.
func (r *CustomerRepo) checkUnique(c *entity.Customer) error {
	for id, other := range r.s.customers {
		if id == c.ID {
			continue
		}
		if other.TaxID == c.TaxID {
			return domain.ErrDuplicateTaxID
		}
		if c.ContactEmail != "" && other.ContactEmail == c.ContactEmail {
			return domain.ErrDuplicateContactEmail
		}
	}
	return nil
}
