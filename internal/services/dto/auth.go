package dto

import "devconnect_backend/internal/models"

// RegisterRequest creates an account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest authenticates by email and password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries the issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// RegisterResponse returns the token together with the created user.
type RegisterResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
