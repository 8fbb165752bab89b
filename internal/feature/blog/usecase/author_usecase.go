package usecase

import (
	"context"

	"blog_backend/internal/feature/blog/domain/entity"
)

// AuthorInput carries the author fields supplied by a caller, either
// directly or nested inside a post payload.
type AuthorInput struct {
	Name           string
	Link           string
	ProfilePicture string
	Description    string
}

// AuthorPatch carries a partial author update. Nil fields are left
// unchanged. Owner and ID are not representable here, which is what keeps
// them immutable.
type AuthorPatch struct {
	Name           *string
	Link           *string
	ProfilePicture *string
	Description    *string
}

// AuthorRepository abstracts the persistence layer for author entities.
// Every operation is scoped to an owner before it touches any row.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type AuthorRepository interface {
	// List returns all authors owned by ownerID, ordered by name
	// descending with ID descending as tie-break.
	List(ctx context.Context, ownerID uint) ([]entity.Author, error)

	// Create inserts a new author row.
	Create(ctx context.Context, author *entity.Author) error

	// GetOrCreate returns the owner's author row matching all of the
	// value fields, creating it first when absent.
	GetOrCreate(ctx context.Context, author entity.Author) (entity.Author, error)

	// Update applies the column updates to the author owned by ownerID.
	// It returns ErrAuthorNotFound when no such row exists.
	Update(ctx context.Context, id, ownerID uint, updates map[string]any) (*entity.Author, error)

	// Delete removes the author owned by ownerID together with its post
	// links. It returns ErrAuthorNotFound when no such row exists.
	Delete(ctx context.Context, id, ownerID uint) error
}

// authorUsecase implements the author management business logic.
type authorUsecase struct {
	authors AuthorRepository
}

// NewAuthorUsecase creates a new authorUsecase instance.
func NewAuthorUsecase(authors AuthorRepository) *authorUsecase {
	return &authorUsecase{authors: authors}
}

// List returns the caller's authors, name descending.
func (u *authorUsecase) List(ctx context.Context, ownerID uint) ([]entity.Author, error) {
	return u.authors.List(ctx, ownerID)
}

// Update applies a partial update to one of the caller's authors.
// Only the allow-listed mutable columns can ever reach the repository.
func (u *authorUsecase) Update(ctx context.Context, id, ownerID uint, patch AuthorPatch) (*entity.Author, error) {
	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Link != nil {
		updates["link"] = *patch.Link
	}
	if patch.ProfilePicture != nil {
		updates["profile_picture"] = *patch.ProfilePicture
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	return u.authors.Update(ctx, id, ownerID, updates)
}

// Delete removes one of the caller's authors.
func (u *authorUsecase) Delete(ctx context.Context, id, ownerID uint) error {
	return u.authors.Delete(ctx, id, ownerID)
}
