// Package repo – Session repository.
//
// Server-side login sessions referenced by an opaque cookie token. Lookups
// treat expired rows as absent; PurgeExpiredSessions removes them for real and
// can be called opportunistically (e.g. on login).
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orendahub/go-rental-backend/internal/domain"
)

// CreateSession inserts a new session for userID valid for ttl and returns it.
func CreateSession(ctx context.Context, db *gorm.DB, userID string, ttl time.Duration) (*domain.Session, error) {
	now := time.Now().UTC()
	s := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// GetSession resolves a token to a live session. Expired or unknown tokens
// yield (nil, nil) rather than an error: an absent session is a normal
// outcome for the auth middleware, not a failure.
func GetSession(ctx context.Context, db *gorm.DB, token string, now time.Time) (*domain.Session, error) {
	var s domain.Session
	err := db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, now.UTC()).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// DeleteSession removes a session by token. Deleting an unknown token is a
// no-op, matching logout idempotence.
func DeleteSession(ctx context.Context, db *gorm.DB, token string) error {
	return db.WithContext(ctx).
		Unscoped().
		Delete(&domain.Session{}, "token = ?", token).Error
}

// PurgeExpiredSessions hard-deletes sessions whose expiry has passed and
// returns how many rows were removed.
func PurgeExpiredSessions(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Unscoped().
		Where("expires_at <= ?", now.UTC()).
		Delete(&domain.Session{})
	return res.RowsAffected, res.Error
}
