package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/dinewise/pos/internal/models"
)

// memoryUserStorage is an in-memory UserStorage for authenticator tests.
type memoryUserStorage struct {
	byEmail map[string]*models.User
}

func newMemoryUserStorage() *memoryUserStorage {
	return &memoryUserStorage{byEmail: make(map[string]*models.User)}
}

func (m *memoryUserStorage) CreateUser(_ context.Context, user *models.User) error {
	m.byEmail[user.Email] = user
	return nil
}

func (m *memoryUserStorage) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return m.byEmail[email], nil
}

func (m *memoryUserStorage) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func TestRegisterAndAuthenticate(t *testing.T) {
	authenticator := NewPasswordAuthenticator(newMemoryUserStorage())
	ctx := context.Background()

	user, err := authenticator.Register(ctx, "waiter@dinewise.test", "Ravi", "correct horse", models.RoleWaiter)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.PasswordHash == "correct horse" {
		t.Error("password stored in plaintext")
	}

	got, err := authenticator.Authenticate(ctx, "waiter@dinewise.test", "correct horse")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("authenticated user = %s, want %s", got.ID, user.ID)
	}

	if _, err := authenticator.Authenticate(ctx, "waiter@dinewise.test", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want %v", err, ErrInvalidCredentials)
	}
	if _, err := authenticator.Authenticate(ctx, "nobody@dinewise.test", "correct horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want %v", err, ErrInvalidCredentials)
	}
}

func TestRegisterValidation(t *testing.T) {
	authenticator := NewPasswordAuthenticator(newMemoryUserStorage())
	ctx := context.Background()

	if _, err := authenticator.Register(ctx, "a@b.test", "A", "short", models.RoleWaiter); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("weak password error = %v, want %v", err, ErrWeakPassword)
	}
	if _, err := authenticator.Register(ctx, "a@b.test", "A", "long enough", "manager"); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("bad role error = %v, want %v", err, ErrInvalidRole)
	}

	if _, err := authenticator.Register(ctx, "a@b.test", "A", "long enough", models.RoleAdmin); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := authenticator.Register(ctx, "a@b.test", "B", "long enough", models.RoleChef); !errors.Is(err, ErrEmailExists) {
		t.Errorf("duplicate email error = %v, want %v", err, ErrEmailExists)
	}
}
