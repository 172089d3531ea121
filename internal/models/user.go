package models

import (
	"strings"
	"time"
)

type UserRole string

const (
	RoleBuyer   UserRole = "BUYER"
	RoleRealtor UserRole = "REALTOR"
	RoleAdmin   UserRole = "ADMIN"
)

// ParseUserRole accepts the role in any casing ("buyer", "REALTOR", ...).
func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleBuyer:
		return RoleBuyer, true
	case RoleRealtor:
		return RoleRealtor, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

// RequiresProductKey reports whether signup under this role is gated by a
// product-key proof. Buyers register freely.
func (r UserRole) RequiresProductKey() bool {
	return r != RoleBuyer
}

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string   `gorm:"size:100;not null" json:"name"`
	Email        string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"size:255;not null" json:"-"`
	Phone        string   `gorm:"size:20" json:"phone"`
	Role         UserRole `gorm:"size:20;default:'BUYER'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
