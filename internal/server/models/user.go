// Package models holds the persistence-level and response-level data
// structures shared by repositories, services and the HTTP layer.
package models

import "time"

// User is a registered account. Email is the unique lookup key and is
// stored normalized (trimmed, lowercased). PasswordHash is a bcrypt digest
// and never leaves the server.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
