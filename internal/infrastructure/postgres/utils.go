package postgres

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lucrare/gestao-api/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Nombres de constraints definidos en migrations/00001_init.sql.
// fk_comments_author solo salta si la cuenta del token desapareció antes del insert.
var constraintErrors = map[string]error{
	"uq_users_username":          domain.ErrDuplicateUsername,
	"uq_users_email":             domain.ErrDuplicateEmail,
	"uq_customers_tax_id":        domain.ErrDuplicateTaxID,
	"uq_customers_contact_email": domain.ErrDuplicateContactEmail,
	"fk_comments_customer":       domain.ErrCustomerNotFound,
	"fk_comments_author":         domain.ErrUnauthenticated,
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// isForeignKeyViolation verifica si un error es una violación de FK (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// constraintError traduce una violación de constraint conocida a su error de dominio.
// Devuelve nil si err no es una violación que sepamos mapear.
func constraintError(err error) error {
	unique := isUniqueViolation(err)
	if !unique && !isForeignKeyViolation(err) {
		return nil
	}
	var pgErr *pgconn.PgError
	errors.As(err, &pgErr)
	if mapped, ok := constraintErrors[pgErr.ConstraintName]; ok {
		return mapped
	}
	if unique {
		return domain.ErrDuplicate
	}
	return nil
}

// validID indica si id puede compararse contra una columna UUID.
// Un id mal formado no existe en la tabla; pgx ni siquiera puede codificarlo.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
