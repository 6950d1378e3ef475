package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleGuard   Role = "GUARD"
	RoleDriver  Role = "DRIVER"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Principal is the authenticated caller extracted from the access token.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

func (p Principal) IsAdmin() bool   { return p.Role == RoleAdmin }
func (p Principal) IsManager() bool { return p.Role == RoleManager }
func (p Principal) IsGuard() bool   { return p.Role == RoleGuard }
func (p Principal) IsDriver() bool  { return p.Role == RoleDriver }

// CanManageYard reports whether the caller may mutate yard entities
// (trucks, warehouses, gates, tasks).
func (p Principal) CanManageYard() bool {
	return p.Role == RoleAdmin || p.Role == RoleManager
}
