package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/msomdec/recipe-box/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLen = 1
	minPasswordLen = 10
	// bcrypt silently truncates input beyond 72 bytes, so longer
	// passwords are rejected outright.
	maxPasswordLen = 72
)

// UserService manages user accounts and is the sole gatekeeper of
// password secrecy: plaintext passwords enter here, only bcrypt hashes
// leave.
type UserService struct {
	users      domain.UserRepository
	bcryptCost int
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository, bcryptCost int) *UserService {
	return &UserService{
		users:      users,
		bcryptCost: bcryptCost,
	}
}

// Create registers a new account after validating inputs. The password is
// hashed before anything is persisted. Returns domain.ErrDuplicateUsername
// when the username is already taken.
func (s *UserService) Create(ctx context.Context, username, password, fullName string) (*domain.User, error) {
	if len(username) < minUsernameLen {
		return nil, fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(password) != password {
		return nil, fmt.Errorf("%w: password must not start or end with whitespace", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return nil, fmt.Errorf("%w: password must be at most %d characters", domain.ErrInvalidInput, maxPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		FullName:     fullName,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// FindByUsername looks up a user record. Returns domain.ErrNotFound when
// no such user exists.
func (s *UserService) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}

// FindByID looks up a user record by its identifier.
func (s *UserService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// VerifyPassword reports whether candidate matches the user's stored hash.
// bcrypt's comparison is constant-time; a mismatch is a plain false, never
// an error.
func (s *UserService) VerifyPassword(user *domain.User, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(candidate)) == nil
}
