package model

import "time"

type Role string

const (
	RoleEmployee   Role = "employee"
	RoleManagement Role = "management"
)

type User struct {
	ID         string     `json:"id" bson:"_id,omitempty"`
	Name       string     `json:"name" bson:"name"`
	Email      string     `json:"email" bson:"email"`
	Password   string     `json:"-" bson:"password"` // bcrypt hash, never serialized
	Role       Role       `json:"role" bson:"role"`
	EmployeeID string     `json:"employeeId,omitempty" bson:"employeeId,omitempty"`
	Vessel     string     `json:"vessel,omitempty" bson:"vessel,omitempty"`
	Department string     `json:"department,omitempty" bson:"department,omitempty"`
	IsActive   bool       `json:"isActive" bson:"isActive"`
	LastLogin  *time.Time `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	CreatedAt  time.Time  `json:"createdAt" bson:"createdAt"`
}

// EmployeeProfile is the read-only slice of a user that the scoring
// pipeline sees. Shore-based staff have an empty Vessel.
type EmployeeProfile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Vessel     string `json:"vessel,omitempty"`
	Department string `json:"department,omitempty"`
}

func (u *User) Profile() *EmployeeProfile {
	return &EmployeeProfile{
		ID:         u.ID,
		Name:       u.Name,
		Role:       string(u.Role),
		Vessel:     u.Vessel,
		Department: u.Department,
	}
}
