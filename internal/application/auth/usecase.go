package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/lucrare/gestao-api/internal/application/dto"
	"github.com/lucrare/gestao-api/internal/application/usecase"
	"github.com/lucrare/gestao-api/internal/domain"
	"github.com/lucrare/gestao-api/internal/domain/repository"
	"github.com/lucrare/gestao-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// dummyHash se compara cuando el usuario no existe, para que ambos fallos de login cuesten lo mismo.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("gestao-api-dummy-password"), bcrypt.DefaultCost)

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	users    *usecase.UserUseCase
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth. El alta se delega en UserUseCase
// para compartir chequeos de unicidad y reglas de contraseña.
func NewAuthUseCase(userRepo repository.UserRepository, users *usecase.UserUseCase, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, users: users, jwtCfg: jwtCfg}
}

// Register crea la cuenta y devuelve un token emitido para ella.
// Devuelve domain.ErrDuplicateUsername / ErrDuplicateEmail si ya existen.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.Create(ctx, dto.CreateUserRequest{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
		Tier:     in.Tier,
	})
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Tier, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:    token,
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Tier:     user.Tier,
	}, nil
}

// Login verifica username/password y emite un JWT nuevo.
// Usuario inexistente y contraseña incorrecta devuelven el mismo domain.ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	hash := dummyHash
	if user != nil {
		hash = []byte(user.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(in.Password)); err != nil || user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, string(user.Tier), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:    token,
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Tier:     string(user.Tier),
	}, nil
}
