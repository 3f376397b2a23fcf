// Package memory implementa los puertos de persistencia en memoria.
// Se usa con STORAGE_DRIVER=memory (desarrollo local) y en los tests de casos de uso y HTTP.
package memory

import (
	"context"
	"sync"

	"github.com/lucrare/gestao-api/internal/domain/entity"
	"github.com/lucrare/gestao-api/internal/domain/repository"
)

// Store guarda usuarios, clientes y comentarios con las mismas restricciones que el esquema SQL:
// unicidad, FK de comentarios con CASCADE hacia clientes y RESTRICT hacia autores.
type Store struct {
	mu        sync.RWMutex
	txMu      sync.Mutex
	users     map[string]entity.User
	customers map[string]entity.Customer
	comments  map[string]entity.Comment
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		users:     make(map[string]entity.User),
		customers: make(map[string]entity.Customer),
		comments:  make(map[string]entity.Comment),
	}
}

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Customers devuelve el repositorio de clientes.
func (s *Store) Customers() *CustomerRepo { return &CustomerRepo{s: s} }

// Comments devuelve el repositorio de comentarios.
func (s *Store) Comments() *CommentRepo { return &CommentRepo{s: s} }

// TxRunner devuelve un runner que revierte los cambios si fn falla.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las transacciones y restaura una copia del estado ante error.
// Escrituras concurrentes fuera de la transacción no quedan aisladas.
type TxRunner struct {
	s *Store
}

// Run ejecuta fn con los repos del store; si fn falla o ctx se cancela se restaura el estado previo.
func (r *TxRunner) Run(ctx context.Context, fn func(
	customers repository.CustomerRepository,
	comments repository.CommentRepository,
) error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	snap := r.s.snapshot()
	err := fn(r.s.Customers(), r.s.Comments())
	if err == nil {
		// Contexto cancelado antes del commit: se descarta igual que en PostgreSQL.
		err = ctx.Err()
	}
	if err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	users     map[string]entity.User
	customers map[string]entity.Customer
	comments  map[string]entity.Comment
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := snapshot{
		users:     make(map[string]entity.User, len(s.users)),
		customers: make(map[string]entity.Customer, len(s.customers)),
		comments:  make(map[string]entity.Comment, len(s.comments)),
	}
	for k, v := range s.users {
		snap.users[k] = v
	}
	for k, v := range s.customers {
		snap.customers[k] = v
	}
	for k, v := range s.comments {
		snap.comments[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = snap.users
	s.customers = snap.customers
	s.comments = snap.comments
}
