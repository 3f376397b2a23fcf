package dto_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucrare/gestao-api/internal/application/dto"
	"github.com/lucrare/gestao-api/internal/domain"
)

func TestValidate_RegisterValido(t *testing.T) {
	err := dto.Validate(dto.RegisterRequest{Username: "alice", Email: "alice@x.com", Password: "secret1", Tier: "Standard"})
	assert.NoError(t, err)
}

func TestValidate_UsaNombresJSON(t *testing.T) {
	err := dto.Validate(dto.RegisterRequest{Username: "", Email: "no-es-email", Password: "123"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "es requerido", verr.Fields["username"])
	assert.Equal(t, "debe ser un email válido", verr.Fields["email"])
	assert.Equal(t, "debe tener al menos 6 caracteres", verr.Fields["password"])
}

func TestValidate_TierYAliases(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.CreateUserRequest{Username: "a", Email: "a@x.com", Password: "secret1", Tier: "Administrador"}))
	err := dto.Validate(dto.CreateUserRequest{Username: "a", Email: "a@x.com", Password: "secret1", Tier: "root"})
	require.Error(t, err)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "tier")
}

func TestValidate_UpdateSinPassword(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.UpdateUserRequest{Username: "a", Email: "a@x.com"}))
	assert.Error(t, dto.Validate(dto.UpdateUserRequest{Username: "a", Email: "a@x.com", Password: "12345"}))
}

func TestValidate_ComentarioEnBlanco(t *testing.T) {
	err := dto.Validate(dto.UpdateCommentRequest{Text: "   "})
	require.Error(t, err)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "es requerido", verr.Fields["text"])
}

func TestValidate_ClienteTipoDesconocido(t *testing.T) {
	err := dto.Validate(dto.CustomerRequest{TaxID: "11222333000181", LegalName: "ACME", CompanyType: "Offshore"})
	require.Error(t, err)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "companyType")

	assert.NoError(t, dto.Validate(dto.CustomerRequest{TaxID: "11222333000181", LegalName: "ACME", CompanyType: "MEI"}))
}
