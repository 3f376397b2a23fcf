package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucrare/gestao-api/internal/application/dto"
	"github.com/lucrare/gestao-api/internal/domain"
	"github.com/lucrare/gestao-api/internal/domain/entity"
)

func TestCustomerCreate_NormalizaCNPJYRedondea(t *testing.T) {
	f := newFixture()
	fee := decimal.RequireFromString("1500.555")
	c, err := f.customers.Create(context.Background(), dto.CustomerRequest{
		TaxID:        "11.222.333/0001-81",
		LegalName:    "ACME Ltda",
		CompanyType:  "Simples",
		ContactEmail: "Contato@Acme.com.br",
		FeeAmount:    &fee,
	})
	require.NoError(t, err)
	assert.Equal(t, "11222333000181", c.TaxID)
	assert.Equal(t, string(entity.CompanyTypeSimplifiedRegime), c.CompanyType)
	assert.Equal(t, "contato@acme.com.br", c.ContactEmail)
	assert.True(t, c.Active)
	require.NotNil(t, c.FeeAmount)
	assert.Equal(t, "1500.56", c.FeeAmount.StringFixed(2))
}

func TestCustomerCreate_Validaciones(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	neg := decimal.NewFromInt(-1)

	_, err := f.customers.Create(ctx, dto.CustomerRequest{TaxID: "11222333000182", LegalName: "X", CompanyType: "MEI"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.customers.Create(ctx, dto.CustomerRequest{TaxID: "11222333000181", LegalName: "X", CompanyType: "MEI", AnnualRevenue: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.customers.Create(ctx, dto.CustomerRequest{TaxID: "11222333000181", CompanyType: "MEI"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerCreate_Duplicados(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.customers.Create(ctx, dto.CustomerRequest{TaxID: "11222333000181", LegalName: "A", CompanyType: "MEI", ContactEmail: "a@x.com"})
	require.NoError(t, err)

	_, err = f.customers.Create(ctx, dto.CustomerRequest{TaxID: "11.222.333/0001-81", LegalName: "B", CompanyType: "MEI"})
	assert.ErrorIs(t, err, domain.ErrDuplicateTaxID)

	_, err = f.customers.Create(ctx, dto.CustomerRequest{TaxID: "11444777000161", LegalName: "B", CompanyType: "MEI", ContactEmail: "A@x.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicateContactEmail)
}

func TestCustomerUpdate_ConservaActivoYCreacion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	inactive := false
	c, err := f.customers.Create(ctx, dto.CustomerRequest{TaxID: "11222333000181", LegalName: "A", CompanyType: "MEI", Active: &inactive})
	require.NoError(t, err)

	err = f.customers.Update(ctx, c.ID, dto.CustomerRequest{TaxID: "11222333000181", LegalName: "A renombrada", CompanyType: "LucroReal"})
	require.NoError(t, err)

	got, err := f.customers.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "A renombrada", got.LegalName)
	assert.False(t, got.Active)
	assert.Equal(t, string(entity.CompanyTypeRealProfit), got.CompanyType)
	assert.True(t, got.CreatedAt.Equal(c.CreatedAt))

	err = f.customers.Update(ctx, "no-existe", dto.CustomerRequest{TaxID: "11222333000181", LegalName: "A", CompanyType: "MEI"})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCustomerUpdate_ConflictoConOtroCliente(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a, err := f.customers.Create(ctx, dto.CustomerRequest{TaxID: "11222333000181", LegalName: "A", CompanyType: "MEI", ContactEmail: "a@x.com"})
	require.NoError(t, err)
	b, err := f.customers.Create(ctx, dto.CustomerRequest{TaxID: "11444777000161", LegalName: "B", CompanyType: "MEI", ContactEmail: "b@x.com"})
	require.NoError(t, err)

	err = f.customers.Update(ctx, b.ID, dto.CustomerRequest{TaxID: a.TaxID, LegalName: "B", CompanyType: "MEI", ContactEmail: "b@x.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicateTaxID)

	err = f.customers.Update(ctx, b.ID, dto.CustomerRequest{TaxID: b.TaxID, LegalName: "B", CompanyType: "MEI", ContactEmail: "A@X.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicateContactEmail)

	got, err := f.customers.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "11444777000161", got.TaxID)
	assert.Equal(t, "b@x.com", got.ContactEmail)
}

func TestCustomerDelete_NoAdminProhibidoAunqueNoExista(t *testing.T) {
	f := newFixture()
	alice := f.user(t, "alice", entity.TierStandard)
	c := f.customer(t, "11222333000181")

	assert.ErrorIs(t, f.customers.Delete(context.Background(), alice, "no-existe"), domain.ErrForbidden)
	assert.ErrorIs(t, f.customers.Delete(context.Background(), alice, c.ID), domain.ErrForbidden)
}

func TestCustomerDelete_BorraComentarios(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	admin := f.user(t, "root", entity.TierAdministrator)
	alice := f.user(t, "alice", entity.TierStandard)
	c := f.customer(t, "11222333000181")
	other := f.customer(t, "11444777000161")

	for _, text := range []string{"uno", "dos"} {
		_, err := f.comments.Create(ctx, alice, dto.CreateCommentRequest{CustomerID: c.ID, Text: text})
		require.NoError(t, err)
	}
	_, err := f.comments.Create(ctx, alice, dto.CreateCommentRequest{CustomerID: other.ID, Text: "queda"})
	require.NoError(t, err)

	require.NoError(t, f.customers.Delete(ctx, admin, c.ID))

	n, _ := f.store.Comments().Count(ctx)
	assert.Equal(t, 1, n)
	_, err = f.customers.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.customers.Delete(ctx, admin, c.ID), domain.ErrCustomerNotFound)
}

func TestCustomerList_Filtros(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.customer(t, "11222333000181")
	f.customer(t, "11444777000161")

	list, err := f.customers.List(ctx, dto.CustomerListQuery{})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = f.customers.List(ctx, dto.CustomerListQuery{Search: "11444"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "11444777000161", list[0].TaxID)

	_, err = f.customers.List(ctx, dto.CustomerListQuery{Active: "quizás"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
