// Package repo – BookingRequest repository.
//
// Thin persistence for the booking-request aggregate. The duplicate-PENDING
// probe and the owner join are queries only; the decisions based on them
// belong to services.RequestService.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orendahub/go-rental-backend/internal/domain"
)

// RequestInput carries the tenant-supplied fields of a new booking request.
type RequestInput struct {
	Message string
	From    string // YYYY-MM-DD, optional
	To      string // YYYY-MM-DD, optional
}

// CreateRequest inserts a new PENDING request from tenantID against listingID.
func CreateRequest(ctx context.Context, db *gorm.DB, listingID, tenantID string, in RequestInput) (*domain.BookingRequest, error) {
	r := &domain.BookingRequest{
		ID:        uuid.NewString(),
		ListingID: listingID,
		TenantID:  tenantID,
		Status:    domain.RequestPending,
		Message:   in.Message,
		From:      in.From,
		To:        in.To,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// GetRequest fetches a request by ID, or ErrNotFound if missing.
func GetRequest(ctx context.Context, db *gorm.DB, id string) (*domain.BookingRequest, error) {
	var r domain.BookingRequest
	if err := db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// ListRequestsByTenant returns all requests authored by tenantID, newest first.
func ListRequestsByTenant(ctx context.Context, db *gorm.DB, tenantID string) ([]domain.BookingRequest, error) {
	var out []domain.BookingRequest
	err := db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// ListRequestsByListingIDs returns all requests addressed to any of the given
// listings, newest first. An empty id set short-circuits to an empty slice.
func ListRequestsByListingIDs(ctx context.Context, db *gorm.DB, listingIDs []string) ([]domain.BookingRequest, error) {
	if len(listingIDs) == 0 {
		return []domain.BookingRequest{}, nil
	}
	var out []domain.BookingRequest
	err := db.WithContext(ctx).
		Where("listing_id IN ?", listingIDs).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// PendingRequestExists reports whether tenantID already has a PENDING request
// against listingID.
func PendingRequestExists(ctx context.Context, db *gorm.DB, listingID, tenantID string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.BookingRequest{}).
		Where("listing_id = ? AND tenant_id = ? AND status = ?", listingID, tenantID, domain.RequestPending).
		Count(&n).Error
	return n > 0, err
}

// UpdateRequestStatus overwrites the status of a request. ErrNotFound when no
// row matched. Status legality is decided by the caller.
func UpdateRequestStatus(ctx context.Context, db *gorm.DB, id string, status domain.RequestStatus) error {
	res := db.WithContext(ctx).
		Model(&domain.BookingRequest{}).
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
