// Package cnpj normaliza y valida el CNPJ (Cadastro Nacional da Pessoa Jurídica).
package cnpj

import (
	"fmt"
	"unicode"
)

// Length es la cantidad de dígitos de un CNPJ sin máscara.
const Length = 14

// pesos del algoritmo módulo 11 de la Receita Federal para el primer y segundo dígito verificador.
var (
	firstWeights  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Normalize quita la máscara (puntos, barra, guion, espacios) y devuelve solo los dígitos.
// "11.222.333/0001-81" → "11222333000181".
func Normalize(s string) string {
	return string(extractDigits(s))
}

// Validate verifica que el CNPJ (con o sin máscara) tenga 14 dígitos, no sea una
// secuencia repetida y que ambos dígitos verificadores sean correctos.
func Validate(s string) error {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' && r != '/' && r != '-' && r != ' ' {
			return fmt.Errorf("cnpj: carácter inválido %q", r)
		}
	}
	digits := extractDigits(s)
	if len(digits) != Length {
		return fmt.Errorf("cnpj: debe tener %d dígitos, se encontraron %d", Length, len(digits))
	}
	if allEqual(digits) {
		return fmt.Errorf("cnpj: secuencia repetida no es válida")
	}
	d1 := checkDigit(digits[:12], firstWeights[:])
	d2 := checkDigit(append(append([]byte{}, digits[:12]...), d1), secondWeights[:])
	if digits[12] != d1 || digits[13] != d2 {
		return fmt.Errorf("cnpj: dígitos verificadores inválidos: esperado %c%c, recibido %c%c", d1, d2, digits[12], digits[13])
	}
	return nil
}

// Format aplica la máscara XX.XXX.XXX/XXXX-XX. Si el valor no tiene 14 dígitos lo devuelve sin cambios.
func Format(s string) string {
	d := extractDigits(s)
	if len(d) != Length {
		return s
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", d[0:2], d[2:5], d[5:8], d[8:12], d[12:14])
}

func checkDigit(base []byte, weights []int) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * weights[i]
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

func allEqual(digits []byte) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, byte(r))
		}
	}
	return out
}
