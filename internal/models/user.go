package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID             int64     `db:"id"`              // Primary key
	FirstName      string    `db:"first_name"`      // Given name
	LastName       string    `db:"last_name"`       // Family name
	Username       string    `db:"username"`        // Unique username
	Email          string    `db:"email"`           // Unique email
	HashedPassword string    `db:"hashed_password"` // bcrypt hash
	CreatedAt      time.Time `db:"created_at"`      // Creation timestamp
	UpdatedAt      time.Time `db:"updated_at"`      // Last update timestamp
}

// User is the public representation of an account.
// swagger:model User
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
}

// Public strips credentials from the record.
func (u *UserDB) Public() *User {
	return &User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Username:  u.Username,
	}
}

// UserSummary is the reviewer/booker/owner block embedded in other resources.
type UserSummary struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
}

// SignupInput carries the sign-up form.
type SignupInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required,min=4"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginInput carries the log-in form. Credential is a username or an email.
type LoginInput struct {
	Credential string `json:"credential" validate:"required"`
	Password   string `json:"password" validate:"required"`
}
