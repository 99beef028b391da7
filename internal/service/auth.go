package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"inventory-rest-api/internal/model"
	"inventory-rest-api/internal/repository"
	"inventory-rest-api/pkg/apierror"
)

// Session is a freshly issued login session.
type Session struct {
	Token     string
	Identity  *model.Identity
	ExpiresAt time.Time
}

// AuthService registers users and opens and closes their sessions.
type AuthService struct {
	users      repository.UserRepository
	tokens     *TokenService
	bcryptCost int
	logger     *slog.Logger
}

// NewAuthService creates a new auth service. A bcryptCost outside bcrypt's
// accepted range falls back to bcrypt.DefaultCost.
func NewAuthService(users repository.UserRepository, tokens *TokenService, bcryptCost int, logger *slog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost, logger: logger}
}

// Register creates a user with a hashed password.
func (s *AuthService) Register(ctx context.Context, email, password string, role model.Role) (*model.UserSummary, error) {
	if !role.Valid() {
		return nil, apierror.BadRequest("Invalid role")
	}
	email = normalizeEmail(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, email, string(hash), role)
	if errors.Is(err, repository.ErrConflict) {
		return nil, apierror.Conflict("User already exists")
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", slog.Int64("user_id", user.ID), slog.String("role", string(user.Role)))
	summary := user.Summary()
	return &summary, nil
}

// Login checks the credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apierror.NotFound("User does not exist")
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apierror.InvalidCredentials("Incorrect password")
	}

	token, identity, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", slog.Int64("user_id", user.ID))
	return &Session{Token: token, Identity: identity, ExpiresAt: identity.ExpiresAt}, nil
}

// Logout revokes the caller's token. It always succeeds: a revocation store
// failure is logged and the caller is still logged out client side.
func (s *AuthService) Logout(ctx context.Context, identity *model.Identity) {
	if identity == nil {
		return
	}
	if err := s.tokens.Revoke(ctx, identity); err != nil {
		s.logger.Warn("failed to revoke session",
			slog.Int64("user_id", identity.UserID),
			slog.String("error", err.Error()),
		)
		return
	}
	s.logger.Info("user logged out", slog.Int64("user_id", identity.UserID))
}

// Me returns the public view of the caller.
func (s *AuthService) Me(ctx context.Context, identity *model.Identity) (*model.UserSummary, error) {
	user, err := s.users.GetUserByID(ctx, identity.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apierror.NotFound("User does not exist")
	}
	if err != nil {
		return nil, err
	}
	summary := user.Summary()
	return &summary, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
