package model

import "time"

// UserEntity represents the user table entity
type UserEntity struct {
	ID           uint64     `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FirstName    string     `db:"first_name" json:"firstName,omitempty"`
	LastName     string     `db:"last_name" json:"lastName,omitempty"`
	Bio          string     `db:"bio" json:"bio,omitempty"`
	Role         string     `db:"role" json:"role"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
}

// UserProfileUpdate holds the mutable profile fields; nil means unchanged.
type UserProfileUpdate struct {
	FirstName *string
	LastName  *string
	Bio       *string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,password"`
	FirstName string `json:"firstName" validate:"omitempty,max=50"`
	LastName  string `json:"lastName" validate:"omitempty,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=50"`
	LastName  *string `json:"lastName" validate:"omitempty,max=50"`
	Bio       *string `json:"bio" validate:"omitempty,max=500"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,password"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint64 `json:"userId"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    *UserEntity `json:"user"`
}

// PublicProfile is the subset of a user visible to anyone.
type PublicProfile struct {
	ID        uint64 `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"firstName,omitempty"`
	LastName  string `db:"last_name" json:"lastName,omitempty"`
	Bio       string `db:"bio" json:"bio,omitempty"`
}

// Author is embedded in public listings.
type Author struct {
	ID        uint64 `db:"author_user_id" json:"id"`
	FirstName string `db:"author_first_name" json:"firstName,omitempty"`
	LastName  string `db:"author_last_name" json:"lastName,omitempty"`
}
