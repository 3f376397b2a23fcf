package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucrare/gestao-api/internal/application/dto"
	"github.com/lucrare/gestao-api/internal/domain"
	"github.com/lucrare/gestao-api/internal/domain/authz"
	"github.com/lucrare/gestao-api/internal/domain/entity"
)

func TestUserCreate_NormalizaYOcultaHash(t *testing.T) {
	f := newFixture()
	u, err := f.users.Create(context.Background(), dto.CreateUserRequest{
		Username: "  alice ",
		Email:    "Alice@X.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "alice@x.com", u.Email)
	assert.Equal(t, string(entity.TierStandard), u.Tier)

	stored, _ := f.store.Users().GetByID(context.Background(), u.ID)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
}

func TestUserCreate_DuplicadoNoCreaRegistro(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.user(t, "alice", entity.TierStandard)

	_, err := f.users.Create(ctx, dto.CreateUserRequest{Username: "alice", Email: "otra@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	_, err = f.users.Create(ctx, dto.CreateUserRequest{Username: "bob", Email: "ALICE@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	n, _ := f.store.Users().Count(ctx)
	assert.Equal(t, 1, n)
}

func TestUserCreate_PasswordCorta(t *testing.T) {
	f := newFixture()
	_, err := f.users.Create(context.Background(), dto.CreateUserRequest{Username: "a", Email: "a@x.com", Password: "123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdate_MismoUsuarioNoEsDuplicado(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.user(t, "alice", entity.TierStandard)
	f.user(t, "bob", entity.TierStandard)

	err := f.users.Update(ctx, alice.UserID, dto.UpdateUserRequest{Username: "alice", Email: "alice@x.com", Tier: "Administrator"})
	require.NoError(t, err)
	got, _ := f.users.GetByID(ctx, alice.UserID)
	assert.Equal(t, "Administrator", got.Tier)

	err = f.users.Update(ctx, alice.UserID, dto.UpdateUserRequest{Username: "bob", Email: "alice@x.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

	err = f.users.Update(ctx, "no-existe", dto.UpdateUserRequest{Username: "z", Email: "z@x.com"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserDelete_ConComentariosFallaHastaBorrarlos(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	admin := f.user(t, "root", entity.TierAdministrator)
	alice := f.user(t, "alice", entity.TierStandard)
	c := f.customer(t, "11222333000181")

	comment, err := f.comments.Create(ctx, alice, dto.CreateCommentRequest{CustomerID: c.ID, Text: "hola"})
	require.NoError(t, err)

	assert.ErrorIs(t, f.users.Delete(ctx, admin, alice.UserID), domain.ErrHasDependentComments)

	require.NoError(t, f.comments.Delete(ctx, alice, comment.ID))
	assert.NoError(t, f.users.Delete(ctx, admin, alice.UserID))
	assert.ErrorIs(t, f.users.Delete(ctx, admin, alice.UserID), domain.ErrNotFound)
}

func TestUserDelete_SinAutenticar(t *testing.T) {
	f := newFixture()
	alice := f.user(t, "alice", entity.TierStandard)
	err := f.users.Delete(context.Background(), authz.Principal{}, alice.UserID)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
