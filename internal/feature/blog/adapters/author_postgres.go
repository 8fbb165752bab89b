// Package adapters provides the repository implementations for the blog feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"blog_backend/internal/feature/blog/domain/entity"
	"blog_backend/internal/feature/blog/usecase"
)

// authorPostgres is the gorm-backed implementation of the AuthorRepository interface.
type authorPostgres struct {
	db *gorm.DB
}

// Compile-time check that authorPostgres implements AuthorRepository.
var _ usecase.AuthorRepository = (*authorPostgres)(nil)

// NewAuthorRepository creates a new authorPostgres instance with the given gorm.DB connection.
func NewAuthorRepository(db *gorm.DB) *authorPostgres {
	return &authorPostgres{db: db}
}

// getOrCreateAuthor looks up the owner's author row matching every value
// field and creates one when absent. Zero values take part in the match,
// so the lookup uses explicit conditions instead of a struct condition
// (gorm drops zero-value struct fields).
func getOrCreateAuthor(tx *gorm.DB, author entity.Author) (entity.Author, error) {
	var found entity.Author
	err := tx.
		Where("user_id = ? AND name = ? AND link = ? AND profile_picture = ? AND description = ?",
			author.UserID, author.Name, author.Link, author.ProfilePicture, author.Description).
		First(&found).Error
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.Author{}, err
	}
	if err := tx.Create(&author).Error; err != nil {
		return entity.Author{}, err
	}
	return author, nil
}

// List returns all authors owned by ownerID, ordered by name descending.
// ID descending breaks ties so equal names order deterministically.
func (r *authorPostgres) List(ctx context.Context, ownerID uint) ([]entity.Author, error) {
	var authors []entity.Author
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("name DESC").
		Order("id DESC").
		Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}

// Create inserts a new author row.
func (r *authorPostgres) Create(ctx context.Context, author *entity.Author) error {
	return r.db.WithContext(ctx).Create(author).Error
}

// GetOrCreate returns the owner's author row matching all value fields,
// creating it first when absent. Neither path is an error.
func (r *authorPostgres) GetOrCreate(ctx context.Context, author entity.Author) (entity.Author, error) {
	return getOrCreateAuthor(r.db.WithContext(ctx), author)
}

// Update applies the column updates to the author owned by ownerID.
// usecase.ErrAuthorNotFound is returned when the row does not exist or
// belongs to another owner.
func (r *authorPostgres) Update(ctx context.Context, id, ownerID uint, updates map[string]any) (*entity.Author, error) {
	var author entity.Author
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&author).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAuthorNotFound
		}
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&author).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &author, nil
}

// Delete removes the author owned by ownerID. Links from posts are removed
// in the same transaction so no dangling join rows remain.
func (r *authorPostgres) Delete(ctx context.Context, id, ownerID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, ownerID).Delete(&entity.Author{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrAuthorNotFound
		}
		return tx.Exec("DELETE FROM post_authors WHERE author_id = ?", id).Error
	})
}
