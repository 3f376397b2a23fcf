package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucrare/gestao-api/internal/application/usecase"
	"github.com/lucrare/gestao-api/internal/domain/entity"
	"github.com/lucrare/gestao-api/internal/infrastructure/pdf"
)

func TestGenerateCustomerReport_DevuelvePDF(t *testing.T) {
	fee := decimal.RequireFromString("1500.00")
	report := usecase.CustomerReport{
		Title:       "Cartera de clientes",
		GeneratedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		Customers: []*entity.Customer{
			{ID: "c1", TaxID: "11222333000181", LegalName: "ACME Ltda", Active: true, CompanyType: entity.CompanyTypeRealProfit, FeeAmount: &fee},
			{ID: "c2", TaxID: "11444777000161", LegalName: "Beta ME", CompanyType: entity.CompanyTypeMicroEntrepreneur},
		},
		ActiveCount: 1,
	}

	out, err := pdf.NewMarotoCustomerReport("gestao-api").GenerateCustomerReport(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
