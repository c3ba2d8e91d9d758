package models

import (
	"time"
)

// Role classifies a user's privilege tier within the community guard
// hierarchy. The lowest tier ("user", UMUNYERONDO) is the default for
// new registrations.
type Role string

const (
	RoleUser               Role = "user"
	RoleGuard              Role = "guard"
	RoleVillageCoordinator Role = "village_coordinator"
	RoleCellCoordinator    Role = "cell_coordinator"
	RoleSectorCoordinator  Role = "sector_coordinator"
	RoleAdmin              Role = "admin"
)

// AllRoles lists every valid role value, used for registration validation.
var AllRoles = []Role{
	RoleUser,
	RoleGuard,
	RoleVillageCoordinator,
	RoleCellCoordinator,
	RoleSectorCoordinator,
	RoleAdmin,
}

// ParseRole validates a role string, returning false for values outside
// the enumerated set. An empty string maps to the default lowest tier.
func ParseRole(s string) (Role, bool) {
	if s == "" {
		return RoleUser, true
	}
	for _, r := range AllRoles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// IsPrivileged reports whether the role may see other users' attendance
// and manage report statuses. This is the single policy definition;
// handlers must not string-compare roles themselves.
func (r Role) IsPrivileged() bool {
	switch r {
	case RoleAdmin, RoleGuard, RoleVillageCoordinator, RoleCellCoordinator, RoleSectorCoordinator:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id"`
	Username    string     `json:"username" db:"username"`
	Email       string     `json:"email" db:"email"`
	Password    string     `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	FullName    string     `json:"fullName" db:"full_name"`
	NationalID  string     `json:"nationalId" db:"national_id"`
	PhoneNumber string     `json:"phoneNumber" db:"phone_number"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Role        Role       `json:"role" db:"role"`
	District    string     `json:"district" db:"district"`
	Sector      string     `json:"sector" db:"sector"`
	Cell        string     `json:"cell" db:"cell"`
	Village     string     `json:"village" db:"village"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}
