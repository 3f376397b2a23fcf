package memory

import (
	"context"
	"sort"

	"github.com/lucrare/gestao-api/internal/domain"
	"github.com/lucrare/gestao-api/internal/domain/entity"
	"github.com/lucrare/gestao-api/internal/domain/repository"
)

var _ repository.CommentRepository = (*CommentRepo)(nil)

// CommentRepo comentarios en memoria.
type CommentRepo struct {
	s *Store
}

func (r *CommentRepo) Create(_ context.Context, c *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[c.CustomerID]; !ok {
		return domain.ErrCustomerNotFound
	}
	if _, ok := r.s.users[c.AuthorID]; !ok {
		return domain.ErrUserNotFound
	}
	r.s.comments[c.ID] = *c
	return nil
}

func (r *CommentRepo) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if c, ok := r.s.comments[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *CommentRepo) ListByCustomer(_ context.Context, customerID string) ([]*entity.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Comment, 0)
	for _, c := range r.s.comments {
		if c.CustomerID == customerID {
			c := c
			list = append(list, &c)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (r *CommentRepo) UpdateText(_ context.Context, id, text string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.comments[id]
	if !ok {
		return domain.ErrCommentNotFound
	}
	c.Text = text
	r.s.comments[id] = c
	return nil
}

func (r *CommentRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.s.comments, id)
	return nil
}

func (r *CommentRepo) DeleteByCustomer(_ context.Context, customerID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, c := range r.s.comments {
		if c.CustomerID == customerID {
			delete(r.s.comments, id)
			n++
		}
	}
	return n, nil
}

func (r *CommentRepo) CountByAuthor(_ context.Context, authorID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, c := range r.s.comments {
		if c.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

func (r *CommentRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.comments), nil
}
