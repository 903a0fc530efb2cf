package domain

import (
	"fmt"
	"time"
)

// Role is the closed set of caller roles carried in token claims.
type Role string

const (
	RoleUser   Role = "user"
	RoleAgency Role = "agency"
	RoleAdmin  Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAgency, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q: %w", s, ErrValidation)
}

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

type User struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      Role       `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Actor identifies the authenticated caller of a service operation.
type Actor struct {
	ID   int64
	Role Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
