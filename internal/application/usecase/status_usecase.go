package usecase

import (
	"context"

	"github.com/lucrare/gestao-api/internal/application/dto"
	"github.com/lucrare/gestao-api/internal/domain/repository"
)

// StatusUseCase conteos de la base para diagnóstico del despliegue.
type StatusUseCase struct {
	storage   string
	users     repository.UserRepository
	customers repository.CustomerRepository
	comments  repository.CommentRepository
}

// NewStatusUseCase construye el caso de uso; storage es el nombre del driver activo.
func NewStatusUseCase(storage string, users repository.UserRepository, customers repository.CustomerRepository, comments repository.CommentRepository) *StatusUseCase {
	return &StatusUseCase{storage: storage, users: users, customers: customers, comments: comments}
}

// DataStatus cuenta usuarios, clientes y comentarios.
func (uc *StatusUseCase) DataStatus(ctx context.Context) (*dto.DataStatusResponse, error) {
	u, err := uc.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	c, err := uc.customers.Count(ctx)
	if err != nil {
		return nil, err
	}
	m, err := uc.comments.Count(ctx)
	if err != nil {
		return nil, err
	}
	total := u + c + m
	return &dto.DataStatusResponse{
		Storage:   uc.storage,
		Users:     u,
		Customers: c,
		Comments:  m,
		Total:     total,
		IsEmpty:   total == 0,
	}, nil
}
