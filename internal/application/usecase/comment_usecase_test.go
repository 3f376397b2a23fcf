package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucrare/gestao-api/internal/application/dto"
	"github.com/lucrare/gestao-api/internal/domain"
	"github.com/lucrare/gestao-api/internal/domain/entity"
)

func TestCommentCreate_DenormalizaAutorYFormateaFecha(t *testing.T) {
	f := newFixture()
	created := time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)
	f.comments.WithClock(func() time.Time { return created })
	alice := f.user(t, "alice", entity.TierStandard)
	c := f.customer(t, "11222333000181")

	got, err := f.comments.Create(context.Background(), alice, dto.CreateCommentRequest{CustomerID: c.ID, Text: "  follow up needed "})
	require.NoError(t, err)
	assert.Equal(t, "follow up needed", got.Text)
	assert.Equal(t, alice.UserID, got.AuthorID)
	assert.Equal(t, "alice", got.AuthorName)
	assert.Equal(t, c.ID, got.CustomerID)
	assert.Equal(t, "2024-03-10 12:04:05", got.CreatedAt)
	assert.Equal(t, "alice", got.Author.Username)
}

func TestCommentCreate_ClienteInexistenteYTextoVacio(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.user(t, "alice", entity.TierStandard)
	c := f.customer(t, "11222333000181")

	_, err := f.comments.Create(ctx, alice, dto.CreateCommentRequest{CustomerID: "no-existe", Text: "x"})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	_, err = f.comments.Create(ctx, alice, dto.CreateCommentRequest{CustomerID: c.ID, Text: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCommentCreate_NombreHistoricoSobreviveRenombre(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.user(t, "alice", entity.TierStandard)
	c := f.customer(t, "11222333000181")
	_, err := f.comments.Create(ctx, alice, dto.CreateCommentRequest{CustomerID: c.ID, Text: "hola"})
	require.NoError(t, err)

	require.NoError(t, f.users.Update(ctx, alice.UserID, dto.UpdateUserRequest{Username: "alicia", Email: "alice@x.com"}))

	list, err := f.comments.ListByCustomer(ctx, alice, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "alice", list[0].AuthorName)
}

func TestCommentList_OrdenDescendente(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.user(t, "alice", entity.TierStandard)
	c := f.customer(t, "11222333000181")

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, text := range []string{"primero", "segundo", "tercero"} {
		at := base.Add(time.Duration(i) * time.Hour)
		f.comments.WithClock(func() time.Time { return at })
		_, err := f.comments.Create(ctx, alice, dto.CreateCommentRequest{CustomerID: c.ID, Text: text})
		require.NoError(t, err)
	}

	list, err := f.comments.ListByCustomer(ctx, alice, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "tercero", list[0].Text)
	assert.Equal(t, "segundo", list[1].Text)
	assert.Equal(t, "primero", list[2].Text)

	_, err = f.comments.ListByCustomer(ctx, alice, "no-existe")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCommentUpdate_SoloAutorInclusoFrenteAAdmin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.user(t, "alice", entity.TierStandard)
	bob := f.user(t, "bob", entity.TierStandard)
	admin := f.user(t, "root", entity.TierAdministrator)
	c := f.customer(t, "11222333000181")
	comment, err := f.comments.Create(ctx, alice, dto.CreateCommentRequest{CustomerID: c.ID, Text: "follow up needed"})
	require.NoError(t, err)

	_, err = f.comments.Update(ctx, bob, comment.ID, dto.UpdateCommentRequest{Text: "hack"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.comments.Update(ctx, admin, comment.ID, dto.UpdateCommentRequest{Text: "hack"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	updated, err := f.comments.Update(ctx, alice, comment.ID, dto.UpdateCommentRequest{Text: "follow up done"})
	require.NoError(t, err)
	assert.Equal(t, "follow up done", updated.Text)
	assert.Equal(t, comment.CreatedAt, updated.CreatedAt)
	assert.Equal(t, alice.UserID, updated.AuthorID)

	_, err = f.comments.Update(ctx, alice, "no-existe", dto.UpdateCommentRequest{Text: "x"})
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
}

func TestCommentDelete_AutorOAdmin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	alice := f.user(t, "alice", entity.TierStandard)
	bob := f.user(t, "bob", entity.TierStandard)
	admin := f.user(t, "root", entity.TierAdministrator)
	c := f.customer(t, "11222333000181")

	first, err := f.comments.Create(ctx, alice, dto.CreateCommentRequest{CustomerID: c.ID, Text: "uno"})
	require.NoError(t, err)
	second, err := f.comments.Create(ctx, alice, dto.CreateCommentRequest{CustomerID: c.ID, Text: "dos"})
	require.NoError(t, err)

	assert.ErrorIs(t, f.comments.Delete(ctx, bob, first.ID), domain.ErrForbidden)
	assert.NoError(t, f.comments.Delete(ctx, admin, first.ID))
	assert.NoError(t, f.comments.Delete(ctx, alice, second.ID))
	assert.ErrorIs(t, f.comments.Delete(ctx, alice, second.ID), domain.ErrCommentNotFound)
}
