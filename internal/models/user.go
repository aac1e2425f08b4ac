// Package models defines the records persisted by taskman and exchanged
// between the storage, service and presentation layers.
package models

import "time"

// User is an account row. PasswordHash holds the bcrypt hash and is never
// handed to the presentation layer; see Public.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Public returns a copy of u without the password hash.
func (u *User) Public() *User {
	return &User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
