package domain

import (
	"errors"
	"time"
)

// Role is the closed set of account roles. Always obtain one through
// ParseRole so an unknown string can never flow past the boundary.
type Role string

const (
	RoleOwner           Role = "property_owner"
	RoleManager         Role = "manager"
	RoleWebsiteCustomer Role = "website_customer"
	RoleOfflineCustomer Role = "offline_customer"
)

var ErrInvalidRole = errors.New("invalid role")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ParseRole converts a raw string into a Role, rejecting anything outside
// the enumerated set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleOwner, RoleManager, RoleWebsiteCustomer, RoleOfflineCustomer:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
