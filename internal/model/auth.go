package model

import "github.com/golang-jwt/jwt/v5"

type UserClaims struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       Role   `json:"role,omitempty"`
	EmployeeID string `json:"employeeId,omitempty"`
	Vessel     string `json:"vessel,omitempty"`
	Department string `json:"department,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
