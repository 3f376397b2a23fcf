package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerRequest entrada para crear o actualizar un cliente (PUT reemplaza todos los campos mutables).
// Active es puntero para distinguir "no enviado" (true por defecto al crear) de false.
type CustomerRequest struct {
	TaxID         string           `json:"taxId" validate:"required,max=18"`
	LegalName     string           `json:"legalName" validate:"required,max=200"`
	Active        *bool            `json:"active"`
	CompanyType   string           `json:"companyType" validate:"required,companytype"`
	AnnualRevenue *decimal.Decimal `json:"annualRevenue"`
	ContactName   string           `json:"contactName" validate:"max=100"`
	ContactEmail  string           `json:"contactEmail" validate:"omitempty,email,max=100"`
	ContactPhone  string           `json:"contactPhone" validate:"max=20"`
	FeeAmount     *decimal.Decimal `json:"feeAmount"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID            string           `json:"id"`
	TaxID         string           `json:"taxId"`
	LegalName     string           `json:"legalName"`
	Active        bool             `json:"active"`
	CompanyType   string           `json:"companyType"`
	AnnualRevenue *decimal.Decimal `json:"annualRevenue"`
	ContactName   string           `json:"contactName"`
	ContactEmail  string           `json:"contactEmail"`
	ContactPhone  string           `json:"contactPhone"`
	FeeAmount     *decimal.Decimal `json:"feeAmount"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// CustomerListQuery filtros del listado (query string).
type CustomerListQuery struct {
	Search      string `query:"q"`
	Active      string `query:"active"`
	CompanyType string `query:"companyType"`
	Limit       int    `query:"limit"`
	Offset      int    `query:"offset"`
}
