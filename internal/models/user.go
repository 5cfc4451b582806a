package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`               // Primary key
	Username     string    `json:"username" db:"username"`        // Unique username
	Nome         string    `json:"nome" db:"nome"`                // Display name
	Email        string    `json:"email" db:"email"`              // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`          // bcrypt hash, never serialized
	IsActive     bool      `json:"-" db:"is_active"`              // Inactive accounts cannot log in
	DtInclusao   time.Time `json:"dt_inclusao" db:"dt_inclusao"`  // Creation timestamp
}

// UserResponse is the user object returned by auth endpoints
// swagger:model UserResponse
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Nome     string    `json:"nome"`
	Email    string    `json:"email"`
}

// NewUserResponse builds the public view of a user record.
func NewUserResponse(u *UserDB) UserResponse {
	return UserResponse{
		ID:       u.UserID,
		Username: u.Username,
		Nome:     u.Nome,
		Email:    u.Email,
	}
}

// TokenPair holds the JWT access/refresh pair returned by auth endpoints
// swagger:model TokenPair
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
