// Package authz contiene la política de autorización: una función sin estado que,
// dada la operación, el llamador y el dueño del recurso, permite o deniega.
package authz

import (
	"github.com/lucrare/gestao-api/internal/domain"
	"github.com/lucrare/gestao-api/internal/domain/entity"
)

// Operation operación sujeta a autorización.
type Operation int

const (
	CustomerRead Operation = iota + 1
	CustomerCreate
	CustomerUpdate
	CustomerDelete
	CommentRead
	CommentCreate
	CommentEdit
	CommentDelete
	AccountDelete
)

var operationNames = map[Operation]string{
	CustomerRead:   "customer.read",
	CustomerCreate: "customer.create",
	CustomerUpdate: "customer.update",
	CustomerDelete: "customer.delete",
	CommentRead:    "comment.read",
	CommentCreate:  "comment.create",
	CommentEdit:    "comment.edit",
	CommentDelete:  "comment.delete",
	AccountDelete:  "account.delete",
}

func (op Operation) String() string {
	if s, ok := operationNames[op]; ok {
		return s
	}
	return "unknown"
}

// Principal identidad del llamador extraída del token.
type Principal struct {
	UserID   string
	Username string
	Tier     entity.Tier
}

// Authenticated indica si el principal viene de un token válido.
func (p Principal) Authenticated() bool { return p.UserID != "" }

// IsAdministrator atajo sobre el nivel.
func (p Principal) IsAdministrator() bool { return p.Tier.IsAdministrator() }

// Allowed decide si caller puede ejecutar op sobre un recurso cuyo dueño es ownerID.
// ownerID se ignora en operaciones sin chequeo de propiedad.
func Allowed(op Operation, caller Principal, ownerID string) bool {
	if !caller.Authenticated() {
		return false
	}
	switch op {
	case CommentEdit:
		// Solo el autor; los administradores no tienen excepción para editar.
		return ownerID != "" && caller.UserID == ownerID
	case CommentDelete:
		return caller.IsAdministrator() || (ownerID != "" && caller.UserID == ownerID)
	case CustomerDelete:
		return caller.IsAdministrator()
	case CustomerRead, CustomerCreate, CustomerUpdate, CommentRead, CommentCreate:
		return true
	case AccountDelete:
		// TODO: definir si eliminar cuentas debe quedar restringido a Administrator;
		// hoy cualquier usuario autenticado puede hacerlo (solo lo frena el chequeo de comentarios).
		return true
	default:
		return false
	}
}

// Authorize es Allowed expresado como error: domain.ErrForbidden si se deniega,
// domain.ErrUnauthenticated si no hay principal.
func Authorize(op Operation, caller Principal, ownerID string) error {
	if !caller.Authenticated() {
		return domain.ErrUnauthenticated
	}
	if !Allowed(op, caller, ownerID) {
		return domain.ErrForbidden
	}
	return nil
}
