// Package entity defines the domain entities for the blog feature.
package entity

import (
	"time"

	authentity "blog_backend/internal/feature/auth/domain/entity"
)

// Author represents a post author owned by a user. Authors are deduplicated
// by value: the tuple (UserID, Name, Link, ProfilePicture, Description) acts
// as the get-or-create key when posts reference authors by payload.
type Author struct {
	// ID is the unique identifier for the author.
	ID uint `gorm:"primaryKey"`

	// UserID references the owning user. Deleting the user deletes
	// their authors.
	UserID uint            `gorm:"index;not null"`
	User   authentity.User `gorm:"constraint:OnDelete:CASCADE"`

	// Name is the author's display name.
	Name string `gorm:"size:255;not null"`

	// Link is a URL pointing at the author's page.
	Link string `gorm:"size:255"`

	// ProfilePicture is a URL pointing at the author's avatar.
	ProfilePicture string `gorm:"size:255"`

	// Description is a short free-form text about the author.
	Description string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
