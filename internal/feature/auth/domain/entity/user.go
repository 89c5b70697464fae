// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// The email address is the sole login identifier; there is no username.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users and between 6 and 50 characters long.
	Email string `gorm:"uniqueIndex;size:50;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// IsStaff marks the user as allowed into administrative surfaces.
	IsStaff bool `gorm:"not null;default:false"`

	// IsActive marks the account as enabled. Inactive users cannot sign in.
	IsActive bool `gorm:"not null;default:true"`

	// IsSuperuser grants all permissions without assigning them explicitly.
	IsSuperuser bool `gorm:"not null;default:false"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
