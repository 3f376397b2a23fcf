// Package csvimport lee exportaciones de clientes en CSV separado por ';'
// (formato de planilla brasileña, UTF-8 o ISO-8859-1).
package csvimport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/lucrare/gestao-api/internal/application/dto"
)

// Encabezados aceptados por columna (comparación sin mayúsculas, acentos ni espacios).
var headerAliases = map[string][]string{
	"taxId":         {"cnpj", "taxid"},
	"legalName":     {"razaosocial", "legalname", "nome"},
	"active":        {"ativo", "active"},
	"companyType":   {"tipoempresa", "companytype", "regime"},
	"annualRevenue": {"faturamentoanual", "annualrevenue"},
	"contactName":   {"nomecontato", "contactname"},
	"contactEmail":  {"emailcontato", "contactemail", "email"},
	"contactPhone":  {"telefonecontato", "contactphone", "telefone"},
	"feeAmount":     {"valorhonorario", "feeamount", "honorario"},
}

// Row una fila leída; Err no nulo si la fila no pudo convertirse.
type Row struct {
	Line    int
	Request dto.CustomerRequest
	Err     error
}

// ReadCustomers lee todo el CSV. Si el contenido no es UTF-8 válido se decodifica como ISO-8859-1.
// Un error de retorno indica un archivo ilegible; los errores por fila van en Row.Err.
func ReadCustomers(r io.Reader) ([]Row, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer CSV: %w", err)
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("CSV vacío")
		}
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	cols, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("leer fila: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if isBlank(rec) {
			continue
		}
		req, err := toRequest(rec, cols)
		rows = append(rows, Row{Line: line, Request: req, Err: err})
	}
	return rows, nil
}

func mapHeader(header []string) (map[string]int, error) {
	cols := make(map[string]int)
	for i, h := range header {
		key := normalizeHeader(h)
		for field, aliases := range headerAliases {
			for _, a := range aliases {
				if key == a {
					cols[field] = i
				}
			}
		}
	}
	for _, required := range []string{"taxId", "legalName", "companyType"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("falta la columna %s", required)
		}
	}
	return cols, nil
}

func toRequest(rec []string, cols map[string]int) (dto.CustomerRequest, error) {
	get := func(field string) string {
		i, ok := cols[field]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	req := dto.CustomerRequest{
		TaxID:        get("taxId"),
		LegalName:    get("legalName"),
		CompanyType:  get("companyType"),
		ContactName:  get("contactName"),
		ContactEmail: get("contactEmail"),
		ContactPhone: get("contactPhone"),
	}
	if v := get("active"); v != "" {
		b, err := parseBool(v)
		if err != nil {
			return req, err
		}
		req.Active = &b
	}
	var err error
	if req.AnnualRevenue, err = parseMoney(get("annualRevenue")); err != nil {
		return req, fmt.Errorf("faturamento: %w", err)
	}
	if req.FeeAmount, err = parseMoney(get("feeAmount")); err != nil {
		return req, fmt.Errorf("honorário: %w", err)
	}
	return req, nil
}

// parseMoney acepta "1.234,56", "1234.56" o "R$ 1.234,56". Vacío es nil.
func parseMoney(s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if s == "" {
		return nil, nil
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("valor inválido %q", s)
	}
	return &d, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "s", "sim", "true", "t", "y", "yes", "si", "sí":
		return true, nil
	case "0", "n", "nao", "não", "false", "f", "no":
		return false, nil
	}
	return false, fmt.Errorf("valor booleano inválido %q", s)
}

func normalizeHeader(s string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "", "ã", "a", "á", "a", "â", "a", "ç", "c", "é", "e", "ê", "e", "í", "i", "ó", "o", "ô", "o", "õ", "o", "ú", "u")
	return r.Replace(strings.ToLower(strings.TrimSpace(s)))
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
