package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lucrare/gestao-api/internal/domain"
	"github.com/lucrare/gestao-api/internal/domain/entity"
	"github.com/lucrare/gestao-api/internal/domain/repository"
)

var _ repository.CommentRepository = (*CommentRepo)(nil)

const commentColumns = `id, customer_id, author_id, author_name, text, created_at`

// CommentRepo implementación de CommentRepository (usable con pool o tx).
type CommentRepo struct {
	q Querier
}

// NewCommentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCommentRepository(q Querier) *CommentRepo {
	return &CommentRepo{q: q}
}

// Create persiste un comentario.
func (r *CommentRepo) Create(ctx context.Context, c *entity.Comment) error {
	if !validID(c.CustomerID) {
		return domain.ErrCustomerNotFound
	}
	if !validID(c.AuthorID) {
		return domain.ErrUnauthenticated
	}
	query := `
		INSERT INTO comments (id, customer_id, author_id, author_name, text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, c.ID, c.CustomerID, c.AuthorID, c.AuthorName, c.Text, c.CreatedAt)
	if err != nil {
		if mapped := constraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// GetByID obtiene un comentario por ID.
func (r *CommentRepo) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	if !validID(id) {
		return nil, nil
	}
	c, err := scanComment(r.q.QueryRow(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return c, nil
}

// ListByCustomer comentarios de un cliente, del más nuevo al más viejo.
// Los IDs son UUIDv7, así que desempatan en orden de creación.
func (r *CommentRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Comment, error) {
	if !validID(customerID) {
		return []*entity.Comment{}, nil
	}
	query := `SELECT ` + commentColumns + ` FROM comments WHERE customer_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// UpdateText reemplaza solo el texto.
func (r *CommentRepo) UpdateText(ctx context.Context, id, text string) error {
	if !validID(id) {
		return domain.ErrCommentNotFound
	}
	tag, err := r.q.Exec(ctx, `UPDATE comments SET text = $2 WHERE id = $1`, id, text)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

// Delete elimina un comentario.
func (r *CommentRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrCommentNotFound
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

// DeleteByCustomer elimina todos los comentarios de un cliente y devuelve cuántos borró.
func (r *CommentRepo) DeleteByCustomer(ctx context.Context, customerID string) (int64, error) {
	if !validID(customerID) {
		return 0, nil
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM comments WHERE customer_id = $1`, customerID)
	if err != nil {
		return 0, fmt.Errorf("delete comments by customer: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CountByAuthor cantidad de comentarios escritos por un usuario.
func (r *CommentRepo) CountByAuthor(ctx context.Context, authorID string) (int, error) {
	if !validID(authorID) {
		return 0, nil
	}
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE author_id = $1`, authorID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count comments by author: %w", err)
	}
	return n, nil
}

// Count total de comentarios.
func (r *CommentRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM comments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return n, nil
}

func scanComment(row pgx.Row) (*entity.Comment, error) {
	var c entity.Comment
	if err := row.Scan(&c.ID, &c.CustomerID, &c.AuthorID, &c.AuthorName, &c.Text, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
