// Package services – ListingService
//
// This file implements the listing registry: CRUD over rental listings with
// ownership enforcement. Listings are the leaf aggregate the booking and
// contract engines resolve by id on every access; nothing here caches joins.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/orendahub/go-rental-backend/internal/domain"
	"github.com/orendahub/go-rental-backend/internal/repo"
)

// ListingService provides listing CRUD with owner checks.
type ListingService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Create inserts a new listing owned by ownerID.
func (s *ListingService) Create(ctx context.Context, ownerID string, in repo.ListingInput) (*domain.Listing, error) {
	return repo.CreateListing(ctx, s.DB, ownerID, in)
}

// List returns all listings, optionally filtered by city geoname id
// (cityID <= 0 disables the filter).
func (s *ListingService) List(ctx context.Context, cityID int) ([]domain.Listing, error) {
	return repo.ListListings(ctx, s.DB, cityID)
}

// ListMine returns the listings posted by ownerID.
func (s *ListingService) ListMine(ctx context.Context, ownerID string) ([]domain.Listing, error) {
	return repo.ListListingsByOwner(ctx, s.DB, ownerID)
}

// Get resolves a listing id, or ErrListingNotFound.
func (s *ListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	l, err := repo.GetListing(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return l, nil
}

// Update applies a partial update to a listing. Only the owner may update;
// a non-owner gets ErrNotListingOwner, a missing id ErrListingNotFound.
func (s *ListingService) Update(ctx context.Context, id, actingUserID string, patch repo.ListingPatch) (*domain.Listing, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.OwnerID != actingUserID {
		return nil, ErrNotListingOwner
	}
	return repo.UpdateListing(ctx, s.DB, id, patch)
}

// Delete removes a listing. Only the owner may delete.
func (s *ListingService) Delete(ctx context.Context, id, actingUserID string) (*domain.Listing, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.OwnerID != actingUserID {
		return nil, ErrNotListingOwner
	}
	if err := repo.DeleteListing(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return current, nil
}
