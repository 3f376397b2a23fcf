package memory

import (
	"context"
	"sort"

	"github.com/lucrare/gestao-api/internal/domain"
	"github.com/lucrare/gestao-api/internal/domain/entity"
	"github.com/lucrare/gestao-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct {
	s *Store
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkUnique(user); err != nil {
		return err
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if u, ok := r.s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Username == username }), nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Email == email }), nil
}

func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		u := u
		list = append(list, &u)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].Username < list[j].Username
	})
	return list, nil
}

func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	if err := r.checkUnique(user); err != nil {
		return err
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	for _, c := range r.s.comments {
		if c.AuthorID == id {
			return domain.ErrHasDependentComments
		}
	}
	delete(r.s.users, id)
	return nil
}

func (r *UserRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.users), nil
}

func (r *UserRepo) find(match func(entity.User) bool) *entity.User {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if match(u) {
			return &u
		}
	}
	return nil
}

// checkUnique requiere r.s.mu tomado.
func (r *UserRepo) checkUnique(user *entity.User) error {
	for id, u := range r.s.users {
		if id == user.ID {
			continue
		}
		if u.Username == user.Username {
			return domain.ErrDuplicateUsername
		}
		if u.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}
	return nil
}
