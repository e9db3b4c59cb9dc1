package models

import "time"

// User is a registered marketplace account. PasswordHash holds the bcrypt
// hash supplied by the credential layer; the store never sees plaintext.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
