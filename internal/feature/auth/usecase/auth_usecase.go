package usecase

import (
	"context"
	"fmt"
	"strings"

	"blog_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength defines the minimum number of characters for a password.
	minPasswordLength = 8
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns an error if a user with the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns an error if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns an error if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer defines the interface for credential token generation.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/jwt).
type TokenIssuer interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// TokenRevoker invalidates issued tokens before their natural expiry.
type TokenRevoker interface {
	// Revoke marks the token as unusable for the rest of its lifetime.
	Revoke(ctx context.Context, token string) error
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users  UserRepository
	issuer TokenIssuer
	tokens TokenRevoker
}

// NewAuthUsecase creates a new instance of authUsecase.
// revoker may be nil, in which case Logout is a no-op.
func NewAuthUsecase(users UserRepository, issuer TokenIssuer, revoker TokenRevoker) *authUsecase {
	return &authUsecase{
		users:  users,
		issuer: issuer,
		tokens: revoker,
	}
}

// NormalizeEmail lowercases the domain part of the email address while
// preserving the casing of the local part. Surrounding whitespace is
// stripped. An address without "@" is returned stripped but otherwise
// unchanged.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// newUser builds a user with a normalized email and hashed password.
// An empty email is rejected before anything is persisted.
func newUser(email, password, name string) (*entity.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return &entity.User{
		Email:    NormalizeEmail(email),
		Password: string(hashed),
		Name:     name,
		IsActive: true,
	}, nil
}

// Signup registers a new regular user.
func (u *authUsecase) Signup(ctx context.Context, email, password, name string) error {
	user, err := newUser(email, password, name)
	if err != nil {
		return err
	}
	return u.users.Create(ctx, user)
}

// CreateSuperuser registers a new user with staff and superuser flags set.
// Used by administrative tooling, never exposed over HTTP.
func (u *authUsecase) CreateSuperuser(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := newUser(email, password, "")
	if err != nil {
		return nil, err
	}
	user.IsStaff = true
	user.IsSuperuser = true
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and returns a signed token on success.
// To keep response timing flat, a bcrypt comparison runs even when the
// user does not exist.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, NormalizeEmail(email))

	// Dummy hash so bcrypt.CompareHashAndPassword is always called.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.issuer.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}

// Logout revokes the presented token. Without a revoker configured the
// token simply ages out at its expiry.
func (u *authUsecase) Logout(ctx context.Context, token string) error {
	if u.tokens == nil {
		return nil
	}
	return u.tokens.Revoke(ctx, token)
}
