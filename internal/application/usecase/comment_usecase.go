package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lucrare/gestao-api/internal/application/dto"
	"github.com/lucrare/gestao-api/internal/domain"
	"github.com/lucrare/gestao-api/internal/domain/authz"
	"github.com/lucrare/gestao-api/internal/domain/entity"
	"github.com/lucrare/gestao-api/internal/domain/repository"
)

// DisplayTimeLayout formato de fecha que espera el front end.
const DisplayTimeLayout = "2006-01-02 15:04:05"

// DefaultDisplayLocation UTC-3 fijo (Brasília no tiene horario de verano desde 2019).
var DefaultDisplayLocation = time.FixedZone("BRT", -3*60*60)

// CommentUseCase libro de comentarios sobre clientes.
type CommentUseCase struct {
	comments  repository.CommentRepository
	customers repository.CustomerRepository
	users     repository.UserRepository
	loc       *time.Location
	now       func() time.Time
}

// NewCommentUseCase construye el caso de uso. loc nil usa DefaultDisplayLocation.
func NewCommentUseCase(
	comments repository.CommentRepository,
	customers repository.CustomerRepository,
	users repository.UserRepository,
	loc *time.Location,
) *CommentUseCase {
	if loc == nil {
		loc = DefaultDisplayLocation
	}
	return &CommentUseCase{
		comments:  comments,
		customers: customers,
		users:     users,
		loc:       loc,
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *CommentUseCase) WithClock(now func() time.Time) *CommentUseCase {
	uc.now = now
	return uc
}

// Create agrega un comentario firmado por el llamador con su nombre de usuario actual.
func (uc *CommentUseCase) Create(ctx context.Context, caller authz.Principal, in dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if err := authz.Authorize(authz.CommentCreate, caller, ""); err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	customer, err := uc.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	author, err := uc.users.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		// Token válido de una cuenta que ya no existe.
		return nil, domain.ErrUnauthenticated
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generar id de comentario: %w", err)
	}
	comment := &entity.Comment{
		ID:         id.String(),
		CustomerID: customer.ID,
		AuthorID:   author.ID,
		AuthorName: author.Username,
		Text:       strings.TrimSpace(in.Text),
		CreatedAt:  uc.now().UTC(),
	}
	if err := uc.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return uc.render(comment), nil
}

// ListByCustomer devuelve los comentarios del cliente, del más nuevo al más viejo.
func (uc *CommentUseCase) ListByCustomer(ctx context.Context, caller authz.Principal, customerID string) ([]*dto.CommentResponse, error) {
	if err := authz.Authorize(authz.CommentRead, caller, ""); err != nil {
		return nil, err
	}
	customer, err := uc.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	list, err := uc.comments.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CommentResponse, 0, len(list))
	for _, c := range list {
		out = append(out, uc.render(c))
	}
	return out, nil
}

// Update reemplaza el texto. Solo el autor puede editar; autor, cliente y fecha no cambian.
func (uc *CommentUseCase) Update(ctx context.Context, caller authz.Principal, id string, in dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	comment, err := uc.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domain.ErrCommentNotFound
	}
	if err := authz.Authorize(authz.CommentEdit, caller, comment.AuthorID); err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	comment.Text = strings.TrimSpace(in.Text)
	if err := uc.comments.UpdateText(ctx, comment.ID, comment.Text); err != nil {
		return nil, err
	}
	return uc.render(comment), nil
}

// Delete elimina un comentario: lo puede hacer su autor o cualquier Administrator.
func (uc *CommentUseCase) Delete(ctx context.Context, caller authz.Principal, id string) error {
	comment, err := uc.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return domain.ErrCommentNotFound
	}
	if err := authz.Authorize(authz.CommentDelete, caller, comment.AuthorID); err != nil {
		return err
	}
	return uc.comments.Delete(ctx, comment.ID)
}

func (uc *CommentUseCase) render(c *entity.Comment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:         c.ID,
		CustomerID: c.CustomerID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Text:       c.Text,
		CreatedAt:  c.CreatedAt.In(uc.loc).Format(DisplayTimeLayout),
		Author:     dto.CommentAuthor{ID: c.AuthorID, Username: c.AuthorName},
	}
}
