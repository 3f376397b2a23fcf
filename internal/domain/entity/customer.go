package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CompanyType régimen tributario de la empresa cliente.
type CompanyType string

const (
	CompanyTypeMicroEntrepreneur CompanyType = "MicroEntrepreneur" // MEI
	CompanyTypeSimplifiedRegime  CompanyType = "SimplifiedRegime"  // Simples Nacional
	CompanyTypePresumedProfit    CompanyType = "PresumedProfit"    // Lucro Presumido
	CompanyTypeRealProfit        CompanyType = "RealProfit"        // Lucro Real
)

// ParseCompanyType acepta el valor canónico o el alias heredado (MEI, Simples, LucroPresumido, LucroReal).
func ParseCompanyType(s string) (CompanyType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "microentrepreneur", "mei":
		return CompanyTypeMicroEntrepreneur, true
	case "simplifiedregime", "simples":
		return CompanyTypeSimplifiedRegime, true
	case "presumedprofit", "lucropresumido":
		return CompanyTypePresumedProfit, true
	case "realprofit", "lucroreal":
		return CompanyTypeRealProfit, true
	default:
		return "", false
	}
}

// Label nombre corto para reportes.
func (t CompanyType) Label() string {
	switch t {
	case CompanyTypeMicroEntrepreneur:
		return "MEI"
	case CompanyTypeSimplifiedRegime:
		return "Simples"
	case CompanyTypePresumedProfit:
		return "Lucro Presumido"
	case CompanyTypeRealProfit:
		return "Lucro Real"
	default:
		return string(t)
	}
}

// Customer representa una empresa cliente de la oficina contable.
type Customer struct {
	ID            string
	TaxID         string // CNPJ, solo dígitos
	LegalName     string // razón social
	Active        bool
	CompanyType   CompanyType
	AnnualRevenue *decimal.Decimal // nil = no informado
	ContactName   string
	ContactEmail  string // vacío = sin email (no participa del índice único)
	ContactPhone  string
	FeeAmount     *decimal.Decimal // honorario mensual; nil = no informado
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
