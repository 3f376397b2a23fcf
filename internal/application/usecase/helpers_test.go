package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lucrare/gestao-api/internal/application/dto"
	"github.com/lucrare/gestao-api/internal/application/usecase"
	"github.com/lucrare/gestao-api/internal/domain/authz"
	"github.com/lucrare/gestao-api/internal/domain/entity"
	"github.com/lucrare/gestao-api/internal/infrastructure/memory"
)

type fixture struct {
	store     *memory.Store
	users     *usecase.UserUseCase
	customers *usecase.CustomerUseCase
	comments  *usecase.CommentUseCase
}

func newFixture() *fixture {
	s := memory.NewStore()
	return &fixture{
		store:     s,
		users:     usecase.NewUserUseCase(s.Users(), s.Comments()).WithHashCost(bcrypt.MinCost),
		customers: usecase.NewCustomerUseCase(s.Customers(), s.TxRunner()),
		comments:  usecase.NewCommentUseCase(s.Comments(), s.Customers(), s.Users(), nil),
	}
}

func (f *fixture) user(t *testing.T, username string, tier entity.Tier) authz.Principal {
	t.Helper()
	u, err := f.users.Create(context.Background(), dto.CreateUserRequest{
		Username: username,
		Email:    username + "@x.com",
		Password: "secret1",
		Tier:     string(tier),
	})
	require.NoError(t, err)
	return authz.Principal{UserID: u.ID, Username: u.Username, Tier: tier}
}

func (f *fixture) customer(t *testing.T, taxID string) *dto.CustomerResponse {
	t.Helper()
	c, err := f.customers.Create(context.Background(), dto.CustomerRequest{
		TaxID:       taxID,
		LegalName:   "Empresa " + taxID,
		CompanyType: string(entity.CompanyTypeSimplifiedRegime),
	})
	require.NoError(t, err)
	return c
}
