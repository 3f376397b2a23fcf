package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lucrare/gestao-api/internal/application/dto"
	"github.com/lucrare/gestao-api/internal/domain"
	"github.com/lucrare/gestao-api/internal/domain/authz"
	"github.com/lucrare/gestao-api/internal/domain/entity"
	"github.com/lucrare/gestao-api/internal/domain/repository"
)

// MinPasswordLength largo mínimo de contraseña en alta y cambio.
const MinPasswordLength = 6

// UserUseCase aplica reglas de negocio para cuentas de usuario.
type UserUseCase struct {
	repo     repository.UserRepository
	comments repository.CommentRepository
	hashCost int
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(repo repository.UserRepository, comments repository.CommentRepository) *UserUseCase {
	return &UserUseCase{repo: repo, comments: comments, hashCost: bcrypt.DefaultCost}
}

// WithHashCost permite bajar el costo de bcrypt (tests).
func (uc *UserUseCase) WithHashCost(cost int) *UserUseCase {
	uc.hashCost = cost
	return uc
}

// List devuelve todas las cuentas (perfil público).
func (uc *UserUseCase) List(ctx context.Context) ([]*dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene una cuenta por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// Create da de alta una cuenta: valida, chequea unicidad de username/email y hashea la contraseña.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	tier, _ := entity.ParseTier(in.Tier)
	if err := uc.checkUnique(ctx, "", in.Username, in.Email); err != nil {
		return nil, err
	}
	hash, err := uc.hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Tier:         tier,
		CreatedAt:    time.Now().UTC(),
	}
	// El índice único es el respaldo real ante altas concurrentes.
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update modifica username, email y nivel; la contraseña solo se re-hashea si viene informada.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) error {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := dto.Validate(in); err != nil {
		return err
	}
	if err := uc.checkUnique(ctx, id, in.Username, in.Email); err != nil {
		return err
	}
	tier, _ := entity.ParseTier(in.Tier)
	user.Username = in.Username
	user.Email = in.Email
	user.Tier = tier
	if in.Password != "" {
		hash, err := uc.hash(in.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}
	return uc.repo.Update(ctx, user)
}

// Delete elimina una cuenta que no haya escrito comentarios.
func (uc *UserUseCase) Delete(ctx context.Context, caller authz.Principal, id string) error {
	if err := authz.Authorize(authz.AccountDelete, caller, id); err != nil {
		return err
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	n, err := uc.comments.CountByAuthor(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasDependentComments
	}
	return uc.repo.Delete(ctx, id)
}

// checkUnique verifica username y email excluyendo la propia cuenta (excludeID vacío en altas).
func (uc *UserUseCase) checkUnique(ctx context.Context, excludeID, username, email string) error {
	existing, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return domain.ErrDuplicateUsername
	}
	existing, err = uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return domain.ErrDuplicateEmail
	}
	return nil
}

func (uc *UserUseCase) hash(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", domain.NewValidationError("password", fmt.Sprintf("debe tener al menos %d caracteres", MinPasswordLength))
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), uc.hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Tier:      string(u.Tier),
		CreatedAt: u.CreatedAt,
	}
}
