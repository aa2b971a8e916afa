package directory

import (
	"errors"
	"strings"
	"time"
)

// Role identifies which workflow actions a user may perform. The values are
// the labels used by the original EPI system and are kept wire-compatible.
type Role string

const (
	RoleCollaborator     Role = "Colaborador"
	RoleSupervisor       Role = "Supervisor"
	RoleAdmin            Role = "Admin"
	RoleSafetyTechnician Role = "Técnico de Segurança"
	RoleWarehouse        Role = "Almoxarife"
	RoleReservist        Role = "Reservista"
)

// Shift is the working shift assigned to a user. Profile data only; the
// workflow engine never branches on it.
type Shift string

const (
	ShiftA     Shift = "A"
	ShiftB     Shift = "B"
	ShiftC     Shift = "C"
	ShiftD     Shift = "D"
	ShiftE     Shift = "E"
	ShiftAdmin Shift = "Administrativo"
)

var roles = map[Role]struct{}{
	RoleCollaborator:     {},
	RoleSupervisor:       {},
	RoleAdmin:            {},
	RoleSafetyTechnician: {},
	RoleWarehouse:        {},
	RoleReservist:        {},
}

// Valid reports whether the role is one of the six known roles.
func (r Role) Valid() bool {
	_, ok := roles[r]
	return ok
}

// ParseRole validates a raw role string.
func ParseRole(raw string) (Role, error) {
	r := Role(strings.TrimSpace(raw))
	if !r.Valid() {
		return "", ErrUnknownRole
	}
	return r, nil
}

// User is an acting identity. ID and Role are immutable for workflow
// purposes; the remaining fields are mutable profile data.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	Department   string    `json:"department,omitempty"`
	Shift        Shift     `json:"shift,omitempty"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

var (
	ErrNotFound           = errors.New("directory: user not found")
	ErrAlreadyExists      = errors.New("directory: user already exists")
	ErrUnknownRole        = errors.New("directory: unknown role")
	ErrInvalidCredentials = errors.New("directory: invalid credentials")
)
