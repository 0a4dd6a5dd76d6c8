// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a user is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orendahub/go-rental-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateUser inserts a new user row. The user ID is a randomly generated UUID
// and CreatedAt is set to UTC. The bank_id unique index is the caller's signal
// for duplicate registrations.
func CreateUser(ctx context.Context, db *gorm.DB, bankID, firstName, lastName, phone string) (*domain.User, error) {
	u := &domain.User{
		ID:        uuid.NewString(),
		BankID:    bankID,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		Rating:    0,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// GetUser fetches a user by ID, or ErrNotFound if missing.
func GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByBankID fetches a user by their external bank identifier, or
// ErrNotFound if no such registration exists.
func GetUserByBankID(ctx context.Context, db *gorm.DB, bankID string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).First(&u, "bank_id = ?", bankID).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers returns all users ordered by creation time descending.
func ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	var out []domain.User
	err := db.WithContext(ctx).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}
