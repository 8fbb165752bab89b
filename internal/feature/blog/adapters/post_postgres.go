package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"blog_backend/internal/feature/blog/domain/entity"
	"blog_backend/internal/feature/blog/usecase"
)

// postPostgres is the gorm-backed implementation of the PostRepository interface.
type postPostgres struct {
	db *gorm.DB
}

// Compile-time check that postPostgres implements PostRepository.
var _ usecase.PostRepository = (*postPostgres)(nil)

// NewPostRepository creates a new postPostgres instance with the given gorm.DB connection.
func NewPostRepository(db *gorm.DB) *postPostgres {
	return &postPostgres{db: db}
}

// resolveAuthors runs each author value through get-or-create and returns
// the distinct resolved rows. Duplicate values in the payload collapse to
// a single row, so attaching stays idempotent.
func resolveAuthors(tx *gorm.DB, authors []entity.Author) ([]entity.Author, error) {
	resolved := make([]entity.Author, 0, len(authors))
	seen := make(map[uint]struct{}, len(authors))
	for _, a := range authors {
		row, err := getOrCreateAuthor(tx, a)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[row.ID]; ok {
			continue
		}
		seen[row.ID] = struct{}{}
		resolved = append(resolved, row)
	}
	return resolved, nil
}

// List returns all posts owned by ownerID with their authors loaded,
// ordered by ID descending (newest first).
func (r *postPostgres) List(ctx context.Context, ownerID uint) ([]entity.Post, error) {
	var posts []entity.Post
	if err := r.db.WithContext(ctx).
		Preload("Authors").
		Where("user_id = ?", ownerID).
		Order("id DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Get returns the post owned by ownerID with its authors loaded.
// usecase.ErrPostNotFound is returned when the row does not exist or
// belongs to another owner.
func (r *postPostgres) Get(ctx context.Context, id, ownerID uint) (*entity.Post, error) {
	var post entity.Post
	err := r.db.WithContext(ctx).
		Preload("Authors").
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create inserts the post and attaches its resolved author set in a single
// transaction. A failure anywhere rolls the whole write back.
func (r *postPostgres) Create(ctx context.Context, post *entity.Post, authors []entity.Author) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Authors").Create(post).Error; err != nil {
			return err
		}
		resolved, err := resolveAuthors(tx, authors)
		if err != nil {
			return err
		}
		if len(resolved) > 0 {
			if err := tx.Model(post).Association("Authors").Append(&resolved); err != nil {
				return err
			}
		}
		post.Authors = resolved
		return nil
	})
}

// Update applies the column updates to the post owned by ownerID. A non-nil
// authors slice replaces the entire author set: existing links are cleared,
// then each value is resolved via get-or-create and attached. Column update
// and author reconciliation share one transaction, so a partially replaced
// author set can never be observed.
func (r *postPostgres) Update(ctx context.Context, id, ownerID uint, updates map[string]any, authors *[]entity.Author) (*entity.Post, error) {
	var post entity.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, ownerID).First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrPostNotFound
			}
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(&post).Updates(updates).Error; err != nil {
				return err
			}
		}
		if authors != nil {
			if err := tx.Model(&post).Association("Authors").Clear(); err != nil {
				return err
			}
			resolved, err := resolveAuthors(tx, *authors)
			if err != nil {
				return err
			}
			if len(resolved) > 0 {
				if err := tx.Model(&post).Association("Authors").Append(&resolved); err != nil {
					return err
				}
			}
		}
		// Reload the author set so the returned post reflects the final state.
		return tx.Preload("Authors").First(&post, post.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes the post owned by ownerID together with its author links.
// usecase.ErrPostNotFound is returned when the row does not exist or
// belongs to another owner.
func (r *postPostgres) Delete(ctx context.Context, id, ownerID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, ownerID).Delete(&entity.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrPostNotFound
		}
		return tx.Exec("DELETE FROM post_authors WHERE post_id = ?", id).Error
	})
}
