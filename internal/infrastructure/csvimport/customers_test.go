package csvimport_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/lucrare/gestao-api/internal/infrastructure/csvimport"
)

func TestReadCustomers_UTF8(t *testing.T) {
	in := "CNPJ;Razão Social;Ativo;TipoEmpresa;FaturamentoAnual;EmailContato;ValorHonorario\n" +
		"11.222.333/0001-81;ACME Ltda;Sim;LucroReal;1.250.000,00;contato@acme.com;R$ 1.500,50\n" +
		"\n" +
		"11444777000161;Beta;não;MEI;;;\n"

	rows, err := csvimport.ReadCustomers(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	require.NoError(t, first.Err)
	assert.Equal(t, 2, first.Line)
	assert.Equal(t, "11.222.333/0001-81", first.Request.TaxID)
	assert.Equal(t, "ACME Ltda", first.Request.LegalName)
	require.NotNil(t, first.Request.Active)
	assert.True(t, *first.Request.Active)
	require.NotNil(t, first.Request.AnnualRevenue)
	assert.Equal(t, "1250000", first.Request.AnnualRevenue.String())
	require.NotNil(t, first.Request.FeeAmount)
	assert.Equal(t, "1500.5", first.Request.FeeAmount.String())

	second := rows[1]
	require.NoError(t, second.Err)
	assert.Equal(t, 4, second.Line)
	assert.False(t, *second.Request.Active)
	assert.Nil(t, second.Request.AnnualRevenue)
}

func TestReadCustomers_Latin1(t *testing.T) {
	utf := "CNPJ;RazaoSocial;TipoEmpresa\n11222333000181;Comércio São João;Simples\n"
	latin, err := charmap.ISO8859_1.NewEncoder().String(utf)
	require.NoError(t, err)

	rows, err := csvimport.ReadCustomers(bytes.NewReader([]byte(latin)))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Comércio São João", rows[0].Request.LegalName)
}

func TestReadCustomers_Errores(t *testing.T) {
	_, err := csvimport.ReadCustomers(strings.NewReader(""))
	assert.Error(t, err)

	_, err = csvimport.ReadCustomers(strings.NewReader("CNPJ;Nome\n1;2\n"))
	assert.ErrorContains(t, err, "companyType")

	rows, err := csvimport.ReadCustomers(strings.NewReader("CNPJ;RazaoSocial;TipoEmpresa;ValorHonorario\n11222333000181;X;MEI;abc\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Error(t, rows[0].Err)
}
