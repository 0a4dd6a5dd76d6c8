// Package repo – Listing repository.
//
// Thin CRUD and query composition for the Listing model. Ownership rules are
// enforced by the service layer; the only ownership the repository knows about
// is the owner_id scoping on update/delete, which doubles as the not-found
// signal when zero rows are affected.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orendahub/go-rental-backend/internal/domain"
)

// ListingInput carries the mutable fields of a listing. Pointer fields on
// updates distinguish "leave unchanged" from explicit zero values.
type ListingInput struct {
	Title       string
	Address     string
	Description string
	Price       float64
	City        domain.City
	Images      []string
}

// ListingPatch is the partial-update companion of ListingInput.
type ListingPatch struct {
	Title       *string
	Address     *string
	Description *string
	Price       *float64
	City        *domain.City
	Images      *[]string
}

// CreateListing inserts a new listing owned by ownerID.
func CreateListing(ctx context.Context, db *gorm.DB, ownerID string, in ListingInput) (*domain.Listing, error) {
	l := &domain.Listing{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       in.Title,
		Address:     in.Address,
		Description: in.Description,
		Price:       in.Price,
		City:        in.City,
		Images:      domain.ImageList(in.Images),
		CreatedAt:   time.Now().UTC(),
	}
	if l.Images == nil {
		l.Images = domain.ImageList{}
	}
	if err := db.WithContext(ctx).Create(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

// ListListings returns all listings ordered newest-first, optionally filtered
// by the geoname id of their city. cityID <= 0 means no filter.
func ListListings(ctx context.Context, db *gorm.DB, cityID int) ([]domain.Listing, error) {
	q := db.WithContext(ctx).Order("created_at desc")
	if cityID > 0 {
		q = q.Where("city_geoname_id = ?", cityID)
	}
	var out []domain.Listing
	err := q.Find(&out).Error
	return out, err
}

// ListListingsByOwner returns all listings posted by ownerID, newest first.
func ListListingsByOwner(ctx context.Context, db *gorm.DB, ownerID string) ([]domain.Listing, error) {
	var out []domain.Listing
	err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// ListingIDsByOwner collects just the ids of the owner's listings. Used by the
// booking-request engine for its incoming-requests join.
func ListingIDsByOwner(ctx context.Context, db *gorm.DB, ownerID string) ([]string, error) {
	var ids []string
	err := db.WithContext(ctx).
		Model(&domain.Listing{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error
	return ids, err
}

// GetListing fetches a listing by ID, or ErrNotFound if missing.
func GetListing(ctx context.Context, db *gorm.DB, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateListing applies a partial update to a listing owned by ownerID and
// returns the updated row. ErrNotFound when the listing does not exist;
// the owner check is left to the service so 403 and 404 stay distinguishable.
func UpdateListing(ctx context.Context, db *gorm.DB, id string, patch ListingPatch) (*domain.Listing, error) {
	var l domain.Listing
	if err := db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if patch.Title != nil {
		l.Title = *patch.Title
	}
	if patch.Address != nil {
		l.Address = *patch.Address
	}
	if patch.Description != nil {
		l.Description = *patch.Description
	}
	if patch.Price != nil {
		l.Price = *patch.Price
	}
	if patch.City != nil {
		l.City = *patch.City
	}
	if patch.Images != nil {
		l.Images = domain.ImageList(*patch.Images)
	}
	if err := db.WithContext(ctx).Save(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// DeleteListing soft-deletes a listing by id. ErrNotFound when no row matched.
func DeleteListing(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Delete(&domain.Listing{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
