package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msomdec/recipe-box/internal/domain"
	"github.com/msomdec/recipe-box/internal/repository/sqlite"
	"github.com/msomdec/recipe-box/internal/service"
)

func newTestUserService(t *testing.T) (*service.UserService, *sqlite.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Use cost 4 for fast tests.
	return service.NewUserService(db.Users(), 4), db
}

func TestUserService_Create_Success(t *testing.T) {
	users, _ := newTestUserService(t)
	ctx := context.Background()

	user, err := users.Create(ctx, "newuser", "correct horse battery", "New User")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if user.ID == "" {
		t.Fatal("expected user ID to be set")
	}
	if user.Username != "newuser" {
		t.Fatalf("expected username newuser, got %s", user.Username)
	}
	if user.FullName != "New User" {
		t.Fatalf("expected full name New User, got %s", user.FullName)
	}
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	users, _ := newTestUserService(t)
	ctx := context.Background()

	const password = "plaintext-password"
	user, err := users.Create(ctx, "hashed", password, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if user.PasswordHash == password {
		t.Fatal("password stored in plaintext")
	}
	if strings.Contains(user.PasswordHash, password) {
		t.Fatal("stored hash contains the plaintext password")
	}

	stored, err := users.FindByUsername(ctx, "hashed")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if strings.Contains(stored.PasswordHash, password) {
		t.Fatal("persisted hash contains the plaintext password")
	}
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	users, _ := newTestUserService(t)
	ctx := context.Background()

	if _, err := users.Create(ctx, "dup", "password-one", ""); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := users.Create(ctx, "dup", "password-two", "")
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestUserService_Create_Validation(t *testing.T) {
	users, _ := newTestUserService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "longenoughpassword"},
		{"empty password", "user", ""},
		{"short password", "user", "tooshort"},
		{"long password", "user", strings.Repeat("x", 73)},
		{"leading whitespace", "user", " padded-password"},
		{"trailing whitespace", "user", "padded-password "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := users.Create(ctx, tc.username, tc.password, "")
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestUserService_VerifyPassword(t *testing.T) {
	users, _ := newTestUserService(t)
	ctx := context.Background()

	const password = "the-real-password"
	if _, err := users.Create(ctx, "verify", password, ""); err != nil {
		t.Fatalf("Create: %v", err)
	}

	user, err := users.FindByUsername(ctx, "verify")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}

	if !users.VerifyPassword(user, password) {
		t.Fatal("expected the correct password to verify")
	}
	if users.VerifyPassword(user, "some-other-password") {
		t.Fatal("expected a wrong password to fail verification")
	}
	if users.VerifyPassword(user, "") {
		t.Fatal("expected an empty password to fail verification")
	}
}

func TestUserService_FindByUsername_NotFound(t *testing.T) {
	users, _ := newTestUserService(t)

	_, err := users.FindByUsername(context.Background(), "nobody")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
