package repository

import (
	"context"

	"github.com/lucrare/gestao-api/internal/domain/entity"
)

// CommentRepository define el puerto de persistencia para Comment.
type CommentRepository interface {
	// Create devuelve domain.ErrCustomerNotFound / ErrUserNotFound si alguna referencia desapareció.
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	// ListByCustomer ordena del más nuevo al más viejo.
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Comment, error)
	UpdateText(ctx context.Context, id, text string) error
	Delete(ctx context.Context, id string) error
	DeleteByCustomer(ctx context.Context, customerID string) (int64, error)
	CountByAuthor(ctx context.Context, authorID string) (int, error)
	Count(ctx context.Context) (int, error)
}
