package repository

import "context"

// TxRunner ejecuta fn con repositorios atados a una misma transacción; si fn devuelve error se hace rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(customers CustomerRepository, comments CommentRepository) error) error
}
