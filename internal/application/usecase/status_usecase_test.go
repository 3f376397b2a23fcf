package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucrare/gestao-api/internal/application/dto"
	"github.com/lucrare/gestao-api/internal/application/usecase"
	"github.com/lucrare/gestao-api/internal/domain/entity"
)

func TestDataStatus_Conteos(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	status := usecase.NewStatusUseCase("memory", f.store.Users(), f.store.Customers(), f.store.Comments())

	empty, err := status.DataStatus(ctx)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty)

	alice := f.user(t, "alice", entity.TierStandard)
	c := f.customer(t, "11222333000181")
	_, err = f.comments.Create(ctx, alice, dto.CreateCommentRequest{CustomerID: c.ID, Text: "hola"})
	require.NoError(t, err)

	got, err := status.DataStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "memory", got.Storage)
	assert.Equal(t, 1, got.Users)
	assert.Equal(t, 1, got.Customers)
	assert.Equal(t, 1, got.Comments)
	assert.Equal(t, 3, got.Total)
	assert.False(t, got.IsEmpty)
}
