package domain

import (
	"errors"
	"time"
)

var ErrPropertyNotFound = errors.New("property not found")
var ErrForbidden = errors.New("access forbidden")
var ErrAlreadyAssigned = errors.New("manager already assigned")
var ErrAssignmentNotFound = errors.New("manager assignment not found")
var ErrNotAManager = errors.New("user does not have the manager role")

// Property is a hotel, guesthouse or resort owned by a single user.
type Property struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	PropertyType string    `json:"property_type"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ManagerAssignment links a manager-role user to a property.
// The (property_id, manager_id) pair is unique.
type ManagerAssignment struct {
	PropertyID string    `json:"property_id"`
	ManagerID  string    `json:"manager_id"`
	CreatedAt  time.Time `json:"created_at"`
}
