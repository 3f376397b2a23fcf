package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthenticated      = errors.New("no autenticado")
	ErrInvalidCredentials   = errors.New("credenciales inválidas")
	ErrForbidden            = errors.New("acceso denegado")
	ErrHasDependentComments = errors.New("el usuario tiene comentarios asociados")
)

// Variantes concretas; envuelven al sentinel genérico para que errors.Is funcione con ambos.
var (
	ErrUserNotFound     = fmt.Errorf("usuario no encontrado: %w", ErrNotFound)
	ErrCustomerNotFound = fmt.Errorf("cliente no encontrado: %w", ErrNotFound)
	ErrCommentNotFound  = fmt.Errorf("comentario no encontrado: %w", ErrNotFound)

	ErrDuplicateUsername     = fmt.Errorf("el nombre de usuario ya existe: %w", ErrDuplicate)
	ErrDuplicateEmail        = fmt.Errorf("el email ya está registrado: %w", ErrDuplicate)
	ErrDuplicateTaxID        = fmt.Errorf("el CNPJ ya está registrado: %w", ErrDuplicate)
	ErrDuplicateContactEmail = fmt.Errorf("el email de contacto ya está registrado: %w", ErrDuplicate)
)

// ValidationError describe uno o más campos inválidos. errors.Is(err, ErrInvalidInput) es true.
type ValidationError struct {
	Fields map[string]string // campo -> mensaje
}

// NewValidationError crea un error de validación para un único campo.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Add agrega un campo inválido (el primero registrado por campo gana).
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// Empty indica si no se registró ningún campo.
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

// OrNil devuelve nil si no hay campos; útil al final de una validación acumulativa.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validación: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
