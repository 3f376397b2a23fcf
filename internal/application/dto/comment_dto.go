package dto

// CreateCommentRequest entrada para comentar un cliente.
type CreateCommentRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
	Text       string `json:"text" validate:"required,notblank,max=4000"`
}

// UpdateCommentRequest entrada para editar el texto de un comentario.
type UpdateCommentRequest struct {
	Text string `json:"text" validate:"required,notblank,max=4000"`
}

// CommentAuthor referencia resumida al autor.
type CommentAuthor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// CommentResponse salida de un comentario; CreatedAt ya convertido a la zona de presentación.
type CommentResponse struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customerId"`
	AuthorID   string        `json:"authorId"`
	AuthorName string        `json:"authorName"`
	Text       string        `json:"text"`
	CreatedAt  string        `json:"createdAt"`
	Author     CommentAuthor `json:"user"`
}
