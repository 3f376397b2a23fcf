package entity

import "time"

// Comment nota libre sobre un cliente.
// AuthorName se copia al escribir y no se recalcula: conserva el nombre vigente al momento de la autoría.
type Comment struct {
	ID         string
	CustomerID string
	AuthorID   string
	AuthorName string
	Text       string
	CreatedAt  time.Time // UTC
}
