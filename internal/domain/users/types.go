package users

import "time"

// User is an account record. PasswordHash never serializes: every read path
// returns the struct with the hash excluded by the json tag.
type User struct {
	ID              int64     `json:"id"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type SignupInput struct {
	FullName        string  `json:"fullName" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,min=8,max=20"`
	ProfileImageURL *string `json:"profileImageUrl" validate:"omitempty,url"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateInput is a partial profile payload; nil fields are left untouched.
type UpdateInput struct {
	FullName        *string `json:"fullName" validate:"omitempty,min=1"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Password        *string `json:"password" validate:"omitempty,min=8,max=20"`
	ProfileImageURL *string `json:"profileImageUrl" validate:"omitempty,url"`
}

// AuthResult pairs an issued token with the user it identifies.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
