package dto

import (
	"time"

	"github.com/nkurunziza/erinda/internal/app/models"
)

// RegisterRequest is the registration payload. Clients send snake_case
// field names.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	FullName    string `json:"full_name"`
	NationalID  string `json:"national_id"`
	PhoneNumber string `json:"phone_number"`
	DateOfBirth string `json:"date_of_birth"`
	Role        string `json:"role"`
	District    string `json:"district"`
	Sector      string `json:"sector"`
	Cell        string `json:"cell"`
	Village     string `json:"village"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is the successful login body
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse is a user serialized for clients: camelCase attributes,
// the id aliased from the store key, never the password. FullNameAlias
// repeats fullName under the snake_case key older clients read.
type UserResponse struct {
	ID            int64       `json:"id"`
	Username      string      `json:"username"`
	Email         string      `json:"email"`
	FullName      string      `json:"fullName"`
	FullNameAlias string      `json:"full_name"`
	NationalID    string      `json:"nationalId"`
	PhoneNumber   string      `json:"phoneNumber"`
	DateOfBirth   *time.Time  `json:"dateOfBirth,omitempty"`
	Role          models.Role `json:"role"`
	District      string      `json:"district"`
	Sector        string      `json:"sector"`
	Cell          string      `json:"cell"`
	Village       string      `json:"village"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// NewUserResponse maps a user entity onto the client representation
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		FullName:      user.FullName,
		FullNameAlias: user.FullName,
		NationalID:    user.NationalID,
		PhoneNumber:   user.PhoneNumber,
		DateOfBirth:   user.DateOfBirth,
		Role:          user.Role,
		District:      user.District,
		Sector:        user.Sector,
		Cell:          user.Cell,
		Village:       user.Village,
		CreatedAt:     user.CreatedAt,
	}
}
