package models

import "time"

// Admin roles. A closed enumeration; authorization checks membership of the
// principal's role in an allowed set.
const (
	RoleAdmin       = "admin"
	RoleCleaning    = "cleaning"
	RoleMaintenance = "maintenance"
)

// Admin represents the admins table. Accounts are never hard-deleted, only
// deactivated via the active flag.
type Admin struct {
	ID           int       `gorm:"primaryKey;column:id" json:"id"`
	Email        string    `gorm:"column:email;size:255;unique" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255" json:"-"`
	Name         string    `gorm:"column:name;size:100" json:"name"`
	Role         string    `gorm:"column:role;size:20;default:admin" json:"role"`
	Active       bool      `gorm:"column:active;default:true" json:"active"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName override
func (Admin) TableName() string {
	return "admins"
}

// IsValidRole reports whether r is a known admin role.
func IsValidRole(r string) bool {
	return r == RoleAdmin || r == RoleCleaning || r == RoleMaintenance
}
