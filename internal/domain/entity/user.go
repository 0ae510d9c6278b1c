// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User represents a registered account. The PasswordHash field holds the
// stored bcrypt digest and is never exposed through the API.
type User struct {
	ID           uint      // Unique identifier, assigned by the store on creation.
	Username     string    // Login identifier, globally unique.
	Email        string    // Contact email, globally unique.
	PasswordHash string    // Irreversible digest of the password. Write-once.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
