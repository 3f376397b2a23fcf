package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Tier     string `json:"tier" validate:"omitempty,tier"`
}

// UpdateUserRequest entrada para actualizar; Password vacío conserva el hash actual.
type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Tier     string `json:"tier" validate:"omitempty,tier"`
}

// RegisterRequest entrada para registro (auth).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Tier     string `json:"tier" validate:"omitempty,tier"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Tier      string    `json:"tier"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse salida de register/login con token JWT.
type AuthResponse struct {
	Token    string `json:"token"`
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Tier     string `json:"tier"`
}
