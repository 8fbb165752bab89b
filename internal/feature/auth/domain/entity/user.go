// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users. The domain part is stored
	// lowercased; the local part keeps its original casing.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Name is the user's display name.
	Name string `gorm:"size:255"`

	// IsStaff grants access to administrative tooling.
	IsStaff bool `gorm:"not null;default:false"`

	// IsActive marks whether the user may authenticate.
	// Inactive users are rejected at login.
	IsActive bool `gorm:"not null;default:true"`

	// IsSuperuser grants all permissions implicitly.
	IsSuperuser bool `gorm:"not null;default:false"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
