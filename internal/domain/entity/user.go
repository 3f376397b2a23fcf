package entity

import (
	"strings"
	"time"
)

// Tier es el nivel de permiso de una cuenta. Es un enum y no un bool para admitir niveles futuros.
type Tier string

// Niveles válidos.
const (
	TierStandard      Tier = "Standard"
	TierAdministrator Tier = "Administrator"
)

// ParseTier acepta el valor canónico y los alias heredados del front end ("Usuario", "Administrador").
// Vacío equivale a Standard.
func ParseTier(s string) (Tier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard", "usuario", "user":
		return TierStandard, true
	case "administrator", "administrador", "admin":
		return TierAdministrator, true
	default:
		return "", false
	}
}

// IsAdministrator indica si el nivel otorga privilegios de administración.
func (t Tier) IsAdministrator() bool { return t == TierAdministrator }

// User representa una cuenta del sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Tier         Tier
	CreatedAt    time.Time
}
