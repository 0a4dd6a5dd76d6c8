// Package services – AuthService
//
// This file implements the identity directory: registration keyed by an
// external bank identifier, passwordless login against that identifier, and
// server-side session issuance. Credential verification itself is out of
// scope (the bank id arrives pre-verified); the service only maintains the
// directory and hands out session tokens for the HTTP layer's cookie.
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/orendahub/go-rental-backend/internal/domain"
	"github.com/orendahub/go-rental-backend/internal/repo"
)

// RegisterInput carries the fields of a new registration.
type RegisterInput struct {
	BankID    string
	FirstName string
	LastName  string
	Phone     string
}

// AuthService provides user registration, login, and session management.
type AuthService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// SessionTTL bounds how long an issued session stays valid.
	SessionTTL time.Duration
}

// NewAuthService constructs an AuthService with the given session lifetime.
func NewAuthService(db *gorm.DB, sessionTTL time.Duration) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 7 * 24 * time.Hour
	}
	return &AuthService{DB: db, SessionTTL: sessionTTL}
}

// Register creates a new user. The bank id must be unused; a duplicate yields
// ErrBankIDTaken whether caught by the pre-check or by the unique index.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if _, err := repo.GetUserByBankID(ctx, s.DB, in.BankID); err == nil {
		return nil, ErrBankIDTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	u, err := repo.CreateUser(ctx, s.DB, in.BankID, in.FirstName, in.LastName, in.Phone)
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrBankIDTaken
		}
		return nil, err
	}
	return u, nil
}

// Login resolves a bank id to a user, or ErrUserNotFound.
func (s *AuthService) Login(ctx context.Context, bankID string) (*domain.User, error) {
	u, err := repo.GetUserByBankID(ctx, s.DB, bankID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetUser resolves a user id, or ErrUserNotFound.
func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	u, err := repo.GetUser(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// StartSession issues a session token for userID. It also sweeps expired
// sessions opportunistically; a failed sweep never fails the login.
func (s *AuthService) StartSession(ctx context.Context, userID string) (*domain.Session, error) {
	_, _ = repo.PurgeExpiredSessions(ctx, s.DB, time.Now())
	return repo.CreateSession(ctx, s.DB, userID, s.SessionTTL)
}

// ResolveSession maps a session token to a user id. Unknown or expired tokens
// return empty without error.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", nil
	}
	sess, err := repo.GetSession(ctx, s.DB, token, time.Now())
	if err != nil || sess == nil {
		return "", err
	}
	return sess.UserID, nil
}

// EndSession invalidates a session token. Unknown tokens are a no-op.
func (s *AuthService) EndSession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return repo.DeleteSession(ctx, s.DB, token)
}
