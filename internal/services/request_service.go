// Package services – RequestService
//
// This file implements the booking-request engine. A tenant opens a PENDING
// request against a listing; the listing owner later approves or rejects it.
// The engine enforces the creation invariants (listing exists, no
// self-booking, listing not already rented out, no duplicate PENDING request)
// and the ownership rule on status updates. It deliberately does not validate
// status transitions beyond enum membership: approving twice is a caller
// error surfaced as a plain overwrite, matching the workflow's contract.
// Forcing a request to COMPLETED is the contract engine's job, never the
// user's.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/orendahub/go-rental-backend/internal/domain"
	"github.com/orendahub/go-rental-backend/internal/repo"
)

// RequestService implements the booking-request workflow.
type RequestService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Create opens a new PENDING request from tenantID against listingID.
//
// Validation order (first failure wins):
//   - listing must exist                → ErrListingNotFound
//   - tenant must not own the listing   → ErrSelfRequest
//   - listing must not be rented out    → ErrListingRented
//   - no PENDING request for this pair  → ErrDuplicateRequest
//
// The checks and the insert run in one transaction; the partial unique index
// on (listing_id, tenant_id) WHERE status='PENDING' turns a lost race into
// ErrDuplicateRequest instead of a second row.
func (s *RequestService) Create(ctx context.Context, listingID, tenantID string, in repo.RequestInput) (*domain.BookingRequest, error) {
	var created *domain.BookingRequest
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		listing, err := repo.GetListing(ctx, tx, listingID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrListingNotFound
			}
			return err
		}

		if listing.OwnerID == tenantID {
			return ErrSelfRequest
		}

		rented, err := repo.SignedContractExistsForListing(ctx, tx, listingID)
		if err != nil {
			return err
		}
		if rented {
			return ErrListingRented
		}

		exists, err := repo.PendingRequestExists(ctx, tx, listingID, tenantID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateRequest
		}

		created, err = repo.CreateRequest(ctx, tx, listingID, tenantID, in)
		if err != nil {
			if isDuplicate(err) {
				return ErrDuplicateRequest
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListMine returns all requests authored by tenantID, newest first.
func (s *RequestService) ListMine(ctx context.Context, tenantID string) ([]domain.BookingRequest, error) {
	return repo.ListRequestsByTenant(ctx, s.DB, tenantID)
}

// ListIncoming returns all requests addressed to listings owned by ownerID.
// The owner's listing ids are collected fresh on every call and the requests
// filtered by membership; no cached join exists to go stale.
func (s *RequestService) ListIncoming(ctx context.Context, ownerID string) ([]domain.BookingRequest, error) {
	ids, err := repo.ListingIDsByOwner(ctx, s.DB, ownerID)
	if err != nil {
		return nil, err
	}
	return repo.ListRequestsByListingIDs(ctx, s.DB, ids)
}

// UpdateStatus overwrites the status of a request on behalf of the listing
// owner.
//
// Failure modes:
//   - unknown request, or its listing no longer resolves → ErrRequestNotFound
//   - acting user does not own the listing               → ErrNotListingOwner
//   - status outside the enum                            → ErrInvalidRequestStatus
//
// Any enum value is otherwise accepted unconditionally; transition legality
// for requests lives with the callers of this workflow.
func (s *RequestService) UpdateStatus(ctx context.Context, requestID, actingUserID string, status domain.RequestStatus) (*domain.BookingRequest, error) {
	if !status.Valid() {
		return nil, ErrInvalidRequestStatus
	}

	var updated *domain.BookingRequest
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		req, err := repo.GetRequest(ctx, tx, requestID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		listing, err := repo.GetListing(ctx, tx, req.ListingID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				// Listing vanished under the request: treated as not found,
				// same as the id never resolving.
				return ErrRequestNotFound
			}
			return err
		}

		if listing.OwnerID != actingUserID {
			return ErrNotListingOwner
		}

		if err := repo.UpdateRequestStatus(ctx, tx, requestID, status); err != nil {
			return err
		}
		req.Status = status
		updated = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// isDuplicate reports whether err is a unique-constraint violation, either as
// GORM's sentinel or as the raw sqlite message.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}
