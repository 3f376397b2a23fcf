// Package pdf genera el reporte de cartera de clientes en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                    │  Fecha de generación    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: CNPJ | Razón social | Régimen | Activo | Fact. | Hon │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: clientes / activos / honorarios mensuales         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/lucrare/gestao-api/internal/application/usecase"
	"github.com/lucrare/gestao-api/internal/domain/entity"
	"github.com/lucrare/gestao-api/pkg/cnpj"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.CustomerReportGenerator = (*MarotoCustomerReport)(nil)

// MarotoCustomerReport implementa usecase.CustomerReportGenerator usando Maroto v2.
type MarotoCustomerReport struct {
	author string
}

// NewMarotoCustomerReport construye el generador; author queda en los metadatos del PDF.
func NewMarotoCustomerReport(author string) *MarotoCustomerReport {
	return &MarotoCustomerReport{author: author}
}

// GenerateCustomerReport genera el PDF y devuelve sus bytes.
func (g *MarotoCustomerReport) GenerateCustomerReport(_ context.Context, report usecase.CustomerReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(report.Customers)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(report usecase.CustomerReport) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("CNPJ", 3, align.Left),
		h("Razón social", 3, align.Left),
		h("Régimen", 2, align.Left),
		h("Activo", 1, align.Center),
		h("Facturación", 2, align.Right),
		h("Honorario", 1, align.Right),
	)
}

func tableRows(customers []*entity.Customer) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7.5, Align: a, Top: 1}))
	}
	rows := make([]core.Row, 0, len(customers))
	for _, c := range customers {
		active := "No"
		if c.Active {
			active = "Sí"
		}
		rows = append(rows, row.New(6).Add(
			cell(cnpj.Format(c.TaxID), 3, align.Left),
			cell(c.LegalName, 3, align.Left),
			cell(c.CompanyType.Label(), 2, align.Left),
			cell(active, 1, align.Center),
			cell(formatBRL(c.AnnualRevenue), 2, align.Right),
			cell(formatBRL(c.FeeAmount), 1, align.Right),
		))
	}
	return rows
}

func summaryRow(report usecase.CustomerReport) core.Row {
	fees := decimal.Zero
	for _, c := range report.Customers {
		if c.Active && c.FeeAmount != nil {
			fees = fees.Add(*c.FeeAmount)
		}
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	return row.New(18).Add(
		col.New(6),
		col.New(6).Add(
			label(fmt.Sprintf("Clientes: %d", len(report.Customers))),
			text.New(fmt.Sprintf("Activos: %d", report.ActiveCount), props.Text{
				Size: 9, Align: align.Right, Right: 2, Top: 5,
			}),
			text.New("Honorarios mensuales (activos): "+formatBRL(&fees), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 10, Color: colorPrimary,
			}),
		),
	)
}

// formatBRL formatea un importe como "R$ 1.234,56"; nil se muestra como guion.
func formatBRL(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + "R$ " + formatThousands(intPart) + "," + frac
}

// formatThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
