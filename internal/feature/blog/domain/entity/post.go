package entity

import (
	"time"

	authentity "blog_backend/internal/feature/auth/domain/entity"
)

// Post represents a blog post owned by a user. The owner is fixed at
// creation time and never changes through updates.
type Post struct {
	// ID is the unique identifier for the post. Identifiers increase
	// monotonically, so ordering by ID descending yields newest first.
	ID uint `gorm:"primaryKey"`

	// UserID references the owning user. Deleting the user deletes
	// their posts.
	UserID uint            `gorm:"index;not null"`
	User   authentity.User `gorm:"constraint:OnDelete:CASCADE"`

	// Title is the post headline.
	Title string `gorm:"size:255;not null"`

	// Description is the post body text.
	Description string `gorm:"size:255"`

	// ImgDescription is a URL pointing at the post's header image.
	ImgDescription string `gorm:"size:255"`

	// Slug is the URL-friendly identifier of the post.
	Slug string `gorm:"size:255"`

	// Authors is the unordered set of authors attached to the post.
	// The join table's composite primary key (post_id, author_id)
	// guarantees each author is linked at most once.
	Authors []Author `gorm:"many2many:post_authors"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
