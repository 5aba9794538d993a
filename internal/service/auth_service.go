package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dinewise/pos/internal/auth"
	"github.com/dinewise/pos/internal/models"
	"github.com/dinewise/pos/internal/storage"
)

// AuthService handles staff registration and login, issuing JWTs on success.
type AuthService struct {
	authenticator *auth.PasswordAuthenticator
	jwtManager    *auth.JWTManager
	store         storage.Store
}

// NewAuthService creates an AuthService.
func NewAuthService(authenticator *auth.PasswordAuthenticator, jwtManager *auth.JWTManager, store storage.Store) *AuthService {
	return &AuthService{authenticator: authenticator, jwtManager: jwtManager, store: store}
}

// Register creates a staff account and returns it with a fresh token.
func (s *AuthService) Register(ctx context.Context, email, name, password string, role models.Role) (*models.User, string, error) {
	user, err := s.authenticator.Register(ctx, email, name, password, role)
	if err != nil {
		return nil, "", mapAuthErr(err)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		return nil, "", err
	}
	slog.Info("user registered", "user_id", user.ID, "email", user.Email, "role", user.Role)
	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		return nil, "", mapAuthErr(err)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ListUsers returns all staff accounts.
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return users, nil
}

// mapAuthErr folds auth sentinels into the service taxonomy.
func mapAuthErr(err error) error {
	switch {
	case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrInvalidRole):
		return invalidf("%v", err)
	case errors.Is(err, auth.ErrEmailExists):
		return conflictf("%v", err)
	default:
		return err
	}
}
