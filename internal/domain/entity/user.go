// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the sole entity in the system: one registered account.
// The ID is assigned by the credential store on creation and is immutable
// afterwards. PasswordHash holds the bcrypt digest of the password; the
// plaintext is never persisted and the hash is never returned to callers
// outside the account service.
type User struct {
	ID           int64     // Store-assigned identifier, allocated once at creation.
	Username     string    // Login identifier; uniqueness is enforced by the store.
	PasswordHash string    // bcrypt hash of the password. Never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this record.
}
