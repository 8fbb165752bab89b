package usecase

import (
	"context"

	"blog_backend/internal/feature/blog/domain/entity"
)

// PostInput carries the full set of mutable post fields.
type PostInput struct {
	Title          string
	Description    string
	ImgDescription string
	Slug           string
}

// PostPatch carries a partial post update. Nil fields are left unchanged.
// Owner and ID are not representable here, which is what keeps them
// immutable regardless of what the raw payload contained.
type PostPatch struct {
	Title          *string
	Description    *string
	ImgDescription *string
	Slug           *string
}

// PostRepository abstracts the persistence layer for post entities.
// Every operation is scoped to an owner before it touches any row, and
// multi-step writes (post plus author set) are atomic.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PostRepository interface {
	// List returns all posts owned by ownerID, newest first, with
	// authors loaded.
	List(ctx context.Context, ownerID uint) ([]entity.Post, error)

	// Get returns the post owned by ownerID, with authors loaded.
	// It returns ErrPostNotFound when no such row exists.
	Get(ctx context.Context, id, ownerID uint) (*entity.Post, error)

	// Create inserts the post and resolves each author value through
	// get-or-create, attaching the results. The whole write is one
	// transaction.
	Create(ctx context.Context, post *entity.Post, authors []entity.Author) error

	// Update applies the column updates to the post owned by ownerID.
	// A non-nil authors slice replaces the entire author set (an empty
	// slice clears it); nil leaves the set untouched. The whole write
	// is one transaction. It returns ErrPostNotFound when no such row
	// exists.
	Update(ctx context.Context, id, ownerID uint, updates map[string]any, authors *[]entity.Author) (*entity.Post, error)

	// Delete removes the post owned by ownerID together with its author
	// links. It returns ErrPostNotFound when no such row exists.
	Delete(ctx context.Context, id, ownerID uint) error
}

// postUsecase implements the post management business logic.
type postUsecase struct {
	posts PostRepository
}

// NewPostUsecase creates a new postUsecase instance.
func NewPostUsecase(posts PostRepository) *postUsecase {
	return &postUsecase{posts: posts}
}

// authorValues converts author inputs to entities owned by ownerID.
func authorValues(ownerID uint, inputs []AuthorInput) []entity.Author {
	authors := make([]entity.Author, 0, len(inputs))
	for _, in := range inputs {
		authors = append(authors, entity.Author{
			UserID:         ownerID,
			Name:           in.Name,
			Link:           in.Link,
			ProfilePicture: in.ProfilePicture,
			Description:    in.Description,
		})
	}
	return authors
}

// List returns the caller's posts, newest first.
func (u *postUsecase) List(ctx context.Context, ownerID uint) ([]entity.Post, error) {
	return u.posts.List(ctx, ownerID)
}

// Get returns one of the caller's posts.
func (u *postUsecase) Get(ctx context.Context, id, ownerID uint) (*entity.Post, error) {
	return u.posts.Get(ctx, id, ownerID)
}

// Create creates a post for the caller. The owner always comes from the
// authenticated identity, never from the payload. Each author value is
// resolved via get-or-create scoped to the same owner.
func (u *postUsecase) Create(ctx context.Context, ownerID uint, in PostInput, authors []AuthorInput) (*entity.Post, error) {
	post := &entity.Post{
		UserID:         ownerID,
		Title:          in.Title,
		Description:    in.Description,
		ImgDescription: in.ImgDescription,
		Slug:           in.Slug,
	}
	if err := u.posts.Create(ctx, post, authorValues(ownerID, authors)); err != nil {
		return nil, err
	}
	return post, nil
}

// Update applies a partial update to one of the caller's posts. Only the
// allow-listed mutable columns can ever reach the repository. A non-nil
// authors slice replaces the whole author set, nil keeps it.
func (u *postUsecase) Update(ctx context.Context, id, ownerID uint, patch PostPatch, authors *[]AuthorInput) (*entity.Post, error) {
	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.ImgDescription != nil {
		updates["img_description"] = *patch.ImgDescription
	}
	if patch.Slug != nil {
		updates["slug"] = *patch.Slug
	}

	var resolved *[]entity.Author
	if authors != nil {
		values := authorValues(ownerID, *authors)
		resolved = &values
	}
	return u.posts.Update(ctx, id, ownerID, updates, resolved)
}

// Delete removes one of the caller's posts.
func (u *postUsecase) Delete(ctx context.Context, id, ownerID uint) error {
	return u.posts.Delete(ctx, id, ownerID)
}
