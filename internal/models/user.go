package models

import "time"

// User is an account record. PasswordHash is a bcrypt hash and never
// leaves the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
