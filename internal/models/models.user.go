package models

import "time"

// User is a registered account. The password is stored only as a one-way
// hash; the plaintext never leaves the registration/login request.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
}

// MaxUsernameLength bounds usernames at registration time.
const MaxUsernameLength = 30
