package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucrare/gestao-api/internal/domain"
	"github.com/lucrare/gestao-api/internal/domain/entity"
	"github.com/lucrare/gestao-api/internal/domain/repository"
	"github.com/lucrare/gestao-api/internal/infrastructure/memory"
)

func seed(t *testing.T, s *memory.Store) (*entity.User, *entity.Customer) {
	t.Helper()
	ctx := context.Background()
	u := &entity.User{ID: "u1", Username: "alice", Email: "alice@x.com", Tier: entity.TierStandard, CreatedAt: time.Now()}
	require.NoError(t, s.Users().Create(ctx, u))
	c := &entity.Customer{ID: "c1", TaxID: "11222333000181", LegalName: "ACME", CompanyType: entity.CompanyTypeRealProfit, Active: true}
	require.NoError(t, s.Customers().Create(ctx, c))
	return u, c
}

func TestUserRepo_Unicidad(t *testing.T) {
	s := memory.NewStore()
	seed(t, s)
	ctx := context.Background()

	err := s.Users().Create(ctx, &entity.User{ID: "u2", Username: "alice", Email: "otra@x.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

	err = s.Users().Create(ctx, &entity.User{ID: "u2", Username: "bob", Email: "alice@x.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	// Actualizarse a sí mismo con los mismos datos no es duplicado.
	u, err := s.Users().GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.NoError(t, s.Users().Update(ctx, u))
}

func TestUserRepo_GetDevuelveCopia(t *testing.T) {
	s := memory.NewStore()
	seed(t, s)
	ctx := context.Background()
	u, _ := s.Users().GetByID(ctx, "u1")
	u.Username = "mutado"
	again, _ := s.Users().GetByID(ctx, "u1")
	assert.Equal(t, "alice", again.Username)

	missing, err := s.Users().GetByUsername(ctx, "nadie")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCustomerRepo_EmailContactoVacioNoEsUnico(t *testing.T) {
	s := memory.NewStore()
	seed(t, s)
	ctx := context.Background()
	err := s.Customers().Create(ctx, &entity.Customer{ID: "c2", TaxID: "11444777000161", LegalName: "Beta"})
	assert.NoError(t, err)
	err = s.Customers().Create(ctx, &entity.Customer{ID: "c3", TaxID: "11222333000181", LegalName: "Gamma"})
	assert.ErrorIs(t, err, domain.ErrDuplicateTaxID)
}

func TestCustomerRepo_ListFiltros(t *testing.T) {
	s := memory.NewStore()
	seed(t, s)
	ctx := context.Background()
	require.NoError(t, s.Customers().Create(ctx, &entity.Customer{ID: "c2", TaxID: "11444777000161", LegalName: "Beta Ltda", CompanyType: entity.CompanyTypeMicroEntrepreneur}))

	all, err := s.Customers().List(ctx, repository.CustomerFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "ACME", all[0].LegalName)

	active := true
	list, _ := s.Customers().List(ctx, repository.CustomerFilter{Active: &active})
	require.Len(t, list, 1)
	assert.Equal(t, "c1", list[0].ID)

	list, _ = s.Customers().List(ctx, repository.CustomerFilter{Search: "beta"})
	require.Len(t, list, 1)
	assert.Equal(t, "c2", list[0].ID)

	list, _ = s.Customers().List(ctx, repository.CustomerFilter{Offset: 1, Limit: 5})
	require.Len(t, list, 1)
	assert.Equal(t, "c2", list[0].ID)
}

func TestCommentRepo_FKyOrden(t *testing.T) {
	s := memory.NewStore()
	u, c := seed(t, s)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	err := s.Comments().Create(ctx, &entity.Comment{ID: "x", CustomerID: "nope", AuthorID: u.ID})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	require.NoError(t, s.Comments().Create(ctx, &entity.Comment{ID: "m1", CustomerID: c.ID, AuthorID: u.ID, Text: "uno", CreatedAt: base}))
	require.NoError(t, s.Comments().Create(ctx, &entity.Comment{ID: "m2", CustomerID: c.ID, AuthorID: u.ID, Text: "dos", CreatedAt: base.Add(time.Minute)}))

	list, err := s.Comments().ListByCustomer(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "m2", list[0].ID)

	// El autor con comentarios no se puede borrar.
	assert.ErrorIs(t, s.Users().Delete(ctx, u.ID), domain.ErrHasDependentComments)

	// Borrar el cliente arrastra sus comentarios.
	require.NoError(t, s.Customers().Delete(ctx, c.ID))
	n, _ := s.Comments().Count(ctx)
	assert.Equal(t, 0, n)
	assert.NoError(t, s.Users().Delete(ctx, u.ID))
}

func TestTxRunner_RevierteAnteError(t *testing.T) {
	s := memory.NewStore()
	u, c := seed(t, s)
	ctx := context.Background()
	require.NoError(t, s.Comments().Create(ctx, &entity.Comment{ID: "m1", CustomerID: c.ID, AuthorID: u.ID, Text: "uno"}))

	boom := errors.New("boom")
	err := s.TxRunner().Run(ctx, func(customers repository.CustomerRepository, comments repository.CommentRepository) error {
		n, err := comments.DeleteByCustomer(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, _ := s.Comments().Count(ctx)
	assert.Equal(t, 1, n)
	got, _ := s.Customers().GetByID(ctx, c.ID)
	assert.NotNil(t, got)
}

func TestTxRunner_RevierteSiSeCancelaElContexto(t *testing.T) {
	s := memory.NewStore()
	_, c := seed(t, s)
	ctx, cancel := context.WithCancel(context.Background())

	err := s.TxRunner().Run(ctx, func(customers repository.CustomerRepository, _ repository.CommentRepository) error {
		require.NoError(t, customers.Delete(ctx, c.ID))
		cancel()
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)

	got, err := s.Customers().GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.NotNil(t, got, "el cliente debe seguir existiendo tras la cancelación")
}
