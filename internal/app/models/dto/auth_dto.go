package dto

import "github.com/memitrading/memi/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required" example:"admin123456"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"admin"`
	Email    string `json:"email" example:"admin@example.com"`
	Role     string `json:"role" example:"admin"`
}

// LoginResponse represents successful authentication response
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewUserResponse strips the password hash and timestamps from a user
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
