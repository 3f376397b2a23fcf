package repository

import (
	"context"

	"github.com/lucrare/gestao-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando no hay registro.
type UserRepository interface {
	// Create devuelve domain.ErrDuplicateUsername / ErrDuplicateEmail si choca con el índice único.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// Delete devuelve domain.ErrHasDependentComments si la FK de comentarios lo impide.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
