package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/feature/blog/domain/entity"
	"blog_backend/internal/feature/blog/usecase"
)

// setupTestDB prepares an in-memory SQLite database with the user, author,
// post and join tables migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&authentity.User{}, &entity.Author{}, &entity.Post{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// createUser inserts a user row to own test data.
func createUser(t *testing.T, db *gorm.DB, email string) *authentity.User {
	t.Helper()

	user := &authentity.User{Email: email, Password: "hashed", IsActive: true}
	require.NoError(t, db.Create(user).Error, "failed to create test user")
	return user
}

func sampleAuthor(ownerID uint, name string) entity.Author {
	return entity.Author{
		UserID:         ownerID,
		Name:           name,
		Link:           "https://example.com/" + name,
		ProfilePicture: "https://example.com/" + name + ".png",
		Description:    "about " + name,
	}
}

func TestAuthorPostgres_List(t *testing.T) {
	t.Run("orders by name descending", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAuthorRepository(db)
		owner := createUser(t, db, "owner@example.com")

		for _, name := range []string{"Alice", "Carol", "Bob"} {
			a := sampleAuthor(owner.ID, name)
			require.NoError(t, repo.Create(context.Background(), &a))
		}

		authors, err := repo.List(context.Background(), owner.ID)

		require.NoError(t, err)
		require.Len(t, authors, 3)
		assert.Equal(t, "Carol", authors[0].Name)
		assert.Equal(t, "Bob", authors[1].Name)
		assert.Equal(t, "Alice", authors[2].Name)
	})

	t.Run("equal names break ties by ID descending", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAuthorRepository(db)
		owner := createUser(t, db, "owner@example.com")

		first := entity.Author{UserID: owner.ID, Name: "Same", Link: "https://a.example"}
		second := entity.Author{UserID: owner.ID, Name: "Same", Link: "https://b.example"}
		require.NoError(t, repo.Create(context.Background(), &first))
		require.NoError(t, repo.Create(context.Background(), &second))

		authors, err := repo.List(context.Background(), owner.ID)

		require.NoError(t, err)
		require.Len(t, authors, 2)
		assert.Equal(t, second.ID, authors[0].ID, "newer row should sort first")
		assert.Equal(t, first.ID, authors[1].ID)
	})

	t.Run("never returns another owner's authors", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAuthorRepository(db)
		owner := createUser(t, db, "owner@example.com")
		other := createUser(t, db, "other@example.com")

		mine := sampleAuthor(owner.ID, "Mine")
		require.NoError(t, repo.Create(context.Background(), &mine))
		for _, name := range []string{"Theirs1", "Theirs2", "Theirs3"} {
			a := sampleAuthor(other.ID, name)
			require.NoError(t, repo.Create(context.Background(), &a))
		}

		authors, err := repo.List(context.Background(), owner.ID)

		require.NoError(t, err)
		require.Len(t, authors, 1)
		assert.Equal(t, mine.ID, authors[0].ID)
	})

	t.Run("empty list for owner without authors", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAuthorRepository(db)
		owner := createUser(t, db, "owner@example.com")

		authors, err := repo.List(context.Background(), owner.ID)

		require.NoError(t, err)
		assert.Empty(t, authors)
	})
}

func TestAuthorPostgres_GetOrCreate(t *testing.T) {
	t.Run("creates a new row when no match exists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAuthorRepository(db)
		owner := createUser(t, db, "owner@example.com")

		author, err := repo.GetOrCreate(context.Background(), sampleAuthor(owner.ID, "Alice"))

		require.NoError(t, err)
		assert.NotZero(t, author.ID)
		assert.Equal(t, owner.ID, author.UserID)
	})

	t.Run("identical values return the same row, no duplicate", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAuthorRepository(db)
		owner := createUser(t, db, "owner@example.com")

		first, err := repo.GetOrCreate(context.Background(), sampleAuthor(owner.ID, "Alice"))
		require.NoError(t, err)

		second, err := repo.GetOrCreate(context.Background(), sampleAuthor(owner.ID, "Alice"))
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID, "second call must reuse the existing row")

		var count int64
		require.NoError(t, db.Model(&entity.Author{}).Count(&count).Error)
		assert.Equal(t, int64(1), count, "no second row may be created")
	})

	t.Run("any differing field creates a new row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAuthorRepository(db)
		owner := createUser(t, db, "owner@example.com")

		base := sampleAuthor(owner.ID, "Alice")
		first, err := repo.GetOrCreate(context.Background(), base)
		require.NoError(t, err)

		changed := base
		changed.Description = "different"
		second, err := repo.GetOrCreate(context.Background(), changed)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID, "a differing field is a different author")
	})

	t.Run("empty fields take part in the match", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAuthorRepository(db)
		owner := createUser(t, db, "owner@example.com")

		bare := entity.Author{UserID: owner.ID, Name: "Bare"}
		first, err := repo.GetOrCreate(context.Background(), bare)
		require.NoError(t, err)

		second, err := repo.GetOrCreate(context.Background(), bare)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID, "zero-value fields must still match")
	})

	t.Run("same values under another owner create a separate row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAuthorRepository(db)
		owner := createUser(t, db, "owner@example.com")
		other := createUser(t, db, "other@example.com")

		mine, err := repo.GetOrCreate(context.Background(), sampleAuthor(owner.ID, "Alice"))
		require.NoError(t, err)

		theirs, err := repo.GetOrCreate(context.Background(), sampleAuthor(other.ID, "Alice"))
		require.NoError(t, err)

		assert.NotEqual(t, mine.ID, theirs.ID, "authors are never shared across owners")
	})
}

func TestAuthorPostgres_Update(t *testing.T) {
	t.Run("applies a partial update", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAuthorRepository(db)
		owner := createUser(t, db, "owner@example.com")

		author := sampleAuthor(owner.ID, "Alice")
		require.NoError(t, repo.Create(context.Background(), &author))

		updated, err := repo.Update(context.Background(), author.ID, owner.ID,
			map[string]any{"name": "Alice Updated"})

		require.NoError(t, err)
		assert.Equal(t, "Alice Updated", updated.Name)
		assert.Equal(t, author.Link, updated.Link, "untouched fields must be preserved")

		var stored entity.Author
		require.NoError(t, db.First(&stored, author.ID).Error)
		assert.Equal(t, "Alice Updated", stored.Name)
	})

	t.Run("empty update leaves the row unchanged", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAuthorRepository(db)
		owner := createUser(t, db, "owner@example.com")

		author := sampleAuthor(owner.ID, "Alice")
		require.NoError(t, repo.Create(context.Background(), &author))

		updated, err := repo.Update(context.Background(), author.ID, owner.ID, map[string]any{})

		require.NoError(t, err)
		assert.Equal(t, "Alice", updated.Name)
	})

	t.Run("another owner's author yields not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAuthorRepository(db)
		owner := createUser(t, db, "owner@example.com")
		other := createUser(t, db, "other@example.com")

		author := sampleAuthor(other.ID, "Theirs")
		require.NoError(t, repo.Create(context.Background(), &author))

		updated, err := repo.Update(context.Background(), author.ID, owner.ID,
			map[string]any{"name": "Hijacked"})

		assert.ErrorIs(t, err, usecase.ErrAuthorNotFound)
		assert.Nil(t, updated)

		var stored entity.Author
		require.NoError(t, db.First(&stored, author.ID).Error)
		assert.Equal(t, "Theirs", stored.Name, "row of another owner must not change")
	})

	t.Run("missing ID yields not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAuthorRepository(db)
		owner := createUser(t, db, "owner@example.com")

		_, err := repo.Update(context.Background(), 999, owner.ID, map[string]any{"name": "X"})

		assert.ErrorIs(t, err, usecase.ErrAuthorNotFound)
	})
}

func TestAuthorPostgres_Delete(t *testing.T) {
	t.Run("deletes an owned author", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAuthorRepository(db)
		owner := createUser(t, db, "owner@example.com")

		author := sampleAuthor(owner.ID, "Alice")
		require.NoError(t, repo.Create(context.Background(), &author))

		err := repo.Delete(context.Background(), author.ID, owner.ID)

		require.NoError(t, err)
		var count int64
		require.NoError(t, db.Model(&entity.Author{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("removes post links with the author", func(t *testing.T) {
		db := setupTestDB(t)
		authorRepo := NewAuthorRepository(db)
		postRepo := NewPostRepository(db)
		owner := createUser(t, db, "owner@example.com")

		post := &entity.Post{UserID: owner.ID, Title: "Post"}
		require.NoError(t, postRepo.Create(context.Background(), post,
			[]entity.Author{sampleAuthor(owner.ID, "Alice")}))
		require.Len(t, post.Authors, 1)

		err := authorRepo.Delete(context.Background(), post.Authors[0].ID, owner.ID)
		require.NoError(t, err)

		reloaded, err := postRepo.Get(context.Background(), post.ID, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, reloaded.Authors, "join rows must not dangle after author delete")
	})

	t.Run("another owner's author yields not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAuthorRepository(db)
		owner := createUser(t, db, "owner@example.com")
		other := createUser(t, db, "other@example.com")

		author := sampleAuthor(other.ID, "Theirs")
		require.NoError(t, repo.Create(context.Background(), &author))

		err := repo.Delete(context.Background(), author.ID, owner.ID)

		assert.ErrorIs(t, err, usecase.ErrAuthorNotFound)

		var count int64
		require.NoError(t, db.Model(&entity.Author{}).Count(&count).Error)
		assert.Equal(t, int64(1), count, "row of another owner must not be deleted")
	})

	t.Run("missing ID yields not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAuthorRepository(db)
		owner := createUser(t, db, "owner@example.com")

		assert.ErrorIs(t, repo.Delete(context.Background(), 999, owner.ID), usecase.ErrAuthorNotFound)
	})
}
