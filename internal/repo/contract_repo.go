// Package repo – Contract repository.
//
// Persistence for the contract aggregate. The request_id unique index backs
// the one-contract-per-request invariant; ContractExistsForRequest is the
// pre-check and the index is the backstop under concurrent writers.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orendahub/go-rental-backend/internal/domain"
)

// ContractInput carries the fields copied into a new DRAFT contract.
type ContractInput struct {
	RequestID string
	ListingID string
	OwnerID   string
	TenantID  string
	Price     float64
	From      string
	To        string
}

// CreateContract inserts a new DRAFT contract.
func CreateContract(ctx context.Context, db *gorm.DB, in ContractInput) (*domain.Contract, error) {
	c := &domain.Contract{
		ID:        uuid.NewString(),
		RequestID: in.RequestID,
		ListingID: in.ListingID,
		OwnerID:   in.OwnerID,
		TenantID:  in.TenantID,
		Price:     in.Price,
		From:      in.From,
		To:        in.To,
		Status:    domain.ContractDraft,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// GetContract fetches a contract by ID, or ErrNotFound if missing.
func GetContract(ctx context.Context, db *gorm.DB, id string) (*domain.Contract, error) {
	var c domain.Contract
	if err := db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ContractExistsForRequest reports whether any contract (in any status)
// already references requestID.
func ContractExistsForRequest(ctx context.Context, db *gorm.DB, requestID string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Contract{}).
		Where("request_id = ?", requestID).
		Count(&n).Error
	return n > 0, err
}

// SignedContractExistsForListing reports whether listingID already has a fully
// signed contract.
func SignedContractExistsForListing(ctx context.Context, db *gorm.DB, listingID string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Contract{}).
		Where("listing_id = ? AND status = ?", listingID, domain.ContractSigned).
		Count(&n).Error
	return n > 0, err
}

// ListContractsByParticipant returns all contracts where userID is owner or
// tenant, newest first.
func ListContractsByParticipant(ctx context.Context, db *gorm.DB, userID string) ([]domain.Contract, error) {
	var out []domain.Contract
	err := db.WithContext(ctx).
		Where("owner_id = ? OR tenant_id = ?", userID, userID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// UpdateContractStatus overwrites the status of a contract. ErrNotFound when
// no row matched. Transition legality is decided by the caller.
func UpdateContractStatus(ctx context.Context, db *gorm.DB, id string, status domain.ContractStatus) error {
	res := db.WithContext(ctx).
		Model(&domain.Contract{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
