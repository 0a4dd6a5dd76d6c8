// Listing HTTP handlers.
//
// This file exposes REST endpoints for listing resources:
//   - GET    /listings           (public catalogue, optional cityId filter)
//   - GET    /listings/:id       (public detail)
//   - GET    /listings/my        (landlord's own listings)
//   - POST   /listings           (create)
//   - PATCH  /listings/:id       (partial update, owner only)
//   - DELETE /listings/:id       (soft delete, owner only)
//
// Catalogue responses embed a compact owner summary so clients can render
// landlord name and rating without extra round trips.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orendahub/go-rental-backend/internal/domain"
	"github.com/orendahub/go-rental-backend/internal/repo"
	"github.com/orendahub/go-rental-backend/internal/services"
	"github.com/orendahub/go-rental-backend/internal/utils"
)

//
// DTOs
//

// CityPayload is the geoname descriptor clients attach to a listing.
type CityPayload struct {
	GeonameID int     `json:"geonameId" binding:"required" example:"703448"`
	Name      string  `json:"name" binding:"required,min=1,max=200" example:"Kyiv"`
	NameUk    string  `json:"nameUk" binding:"omitempty,max=200" example:"Київ"`
	Admin1    string  `json:"admin1" binding:"omitempty,max=20"`
	Admin2    string  `json:"admin2" binding:"omitempty,max=20"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
}

// toCity converts the payload into the embedded persistence shape.
func (p CityPayload) toCity() domain.City {
	return domain.City{
		GeonameID: p.GeonameID,
		Name:      p.Name,
		NameUk:    p.NameUk,
		Admin1:    p.Admin1,
		Admin2:    p.Admin2,
		Lat:       p.Lat,
		Lon:       p.Lon,
	}
}

// CreateListingRequest is the JSON payload for creating a listing.
type CreateListingRequest struct {
	Title       string      `json:"title" binding:"required,min=1,max=255" example:"2-кімнатна на Подолі"`
	Address     string      `json:"address" binding:"required,min=1,max=255" example:"вул. Сагайдачного 12"`
	Description string      `json:"description" binding:"omitempty" example:"Light two-room flat near the river."`
	Price       float64     `json:"price" binding:"required,gt=0" example:"18000"`
	City        CityPayload `json:"city" binding:"required"`
	Images      []string    `json:"images" binding:"omitempty,dive,max=2048"`
}

// UpdateListingRequest is the JSON payload for partially updating a listing.
// Absent fields keep their stored values.
type UpdateListingRequest struct {
	Title       *string      `json:"title" binding:"omitempty,min=1,max=255"`
	Address     *string      `json:"address" binding:"omitempty,min=1,max=255"`
	Description *string      `json:"description"`
	Price       *float64     `json:"price" binding:"omitempty,gt=0"`
	City        *CityPayload `json:"city"`
	Images      *[]string    `json:"images" binding:"omitempty,dive,max=2048"`
}

// ListingWithOwner decorates a listing with its landlord's summary.
type ListingWithOwner struct {
	domain.Listing
	Owner *UserSummary `json:"owner,omitempty"`
}

//
// Helpers
//

// withOwners joins listings with their owners' summaries.
func (h *Handlers) withOwners(c *gin.Context, items []domain.Listing) []ListingWithOwner {
	ids := make([]string, 0, len(items))
	for i := range items {
		ids = append(ids, items[i].OwnerID)
	}
	owners := h.userSummaries(c.Request.Context(), ids)

	out := make([]ListingWithOwner, 0, len(items))
	for i := range items {
		out = append(out, ListingWithOwner{
			Listing: items[i],
			Owner:   owners[items[i].OwnerID],
		})
	}
	return out
}

// listingError maps listing service sentinels onto HTTP failures.
func listingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrListingNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "listing not found")
	case errors.Is(err, services.ErrNotListingOwner):
		fail(c, http.StatusForbidden, ErrCodeForbidden, "not the listing owner")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "listing operation failed")
	}
}

//
// Handlers
//

// CreateListing godoc
// @ID          createListing
// @Summary     Create a listing
// @Description Creates a listing owned by the current user.
// @Tags        Listings
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateListingRequest  true  "Create listing payload"
//
// @Success     201  {object}  domain.Listing
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "No valid session"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /listings [post]
func (h *Handlers) CreateListing(c *gin.Context) {
	uid, proceed := mustUserID(c)
	if !proceed {
		return
	}

	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	l, err := h.listingSvc.Create(c.Request.Context(), uid, repo.ListingInput{
		Title:       strings.TrimSpace(req.Title),
		Address:     strings.TrimSpace(req.Address),
		Description: req.Description,
		Price:       req.Price,
		City:        req.City.toCity(),
		Images:      req.Images,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not create listing")
		return
	}
	ok(c, http.StatusCreated, l)
}

// ListListings godoc
// @ID          listListings
// @Summary     Browse listings
// @Description Returns the public catalogue, newest first, optionally filtered by city geoname id. Each entry embeds the landlord summary.
// @Tags        Listings
// @Produce     json
//
// @Param       cityId  query  int  false  "Filter by city geoname id"  example(703448)
//
// @Success     200  {array}   handlers.ListingWithOwner
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /listings [get]
func (h *Handlers) ListListings(c *gin.Context) {
	cityID := utils.AtoiDefault(c.Query("cityId"), 0)

	items, err := h.listingSvc.List(c.Request.Context(), cityID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not list listings")
		return
	}
	ok(c, http.StatusOK, h.withOwners(c, items))
}

// ListMyListings godoc
// @ID          listMyListings
// @Summary     List my listings
// @Description Returns the listings owned by the current user.
// @Tags        Listings
// @Produce     json
//
// @Success     200  {array}   domain.Listing
// @Failure     401  {object}  handlers.ErrorResponse  "No valid session"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /listings/my [get]
func (h *Handlers) ListMyListings(c *gin.Context) {
	uid, proceed := mustUserID(c)
	if !proceed {
		return
	}

	items, err := h.listingSvc.ListMine(c.Request.Context(), uid)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not list listings")
		return
	}
	ok(c, http.StatusOK, items)
}

// GetListing godoc
// @ID          getListing
// @Summary     Get a listing
// @Description Returns a single listing with its landlord summary.
// @Tags        Listings
// @Produce     json
//
// @Param       id  path  string  true  "Listing ID"
//
// @Success     200  {object}  handlers.ListingWithOwner
// @Failure     404  {object}  handlers.ErrorResponse  "Listing not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /listings/{id} [get]
func (h *Handlers) GetListing(c *gin.Context) {
	l, err := h.listingSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		listingError(c, err)
		return
	}

	owners := h.userSummaries(c.Request.Context(), []string{l.OwnerID})
	ok(c, http.StatusOK, ListingWithOwner{Listing: *l, Owner: owners[l.OwnerID]})
}

// UpdateListing godoc
// @ID          updateListing
// @Summary     Update a listing
// @Description Partially updates a listing. Only the owner may update; absent fields are preserved.
// @Tags        Listings
// @Accept      json
// @Produce     json
//
// @Param       id    path  string                         true  "Listing ID"
// @Param       body  body  handlers.UpdateListingRequest  true  "Fields to update"
//
// @Success     200  {object}  domain.Listing
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "No valid session"
// @Failure     403  {object}  handlers.ErrorResponse  "Not the owner"
// @Failure     404  {object}  handlers.ErrorResponse  "Listing not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /listings/{id} [patch]
func (h *Handlers) UpdateListing(c *gin.Context) {
	uid, proceed := mustUserID(c)
	if !proceed {
		return
	}

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	patch := repo.ListingPatch{
		Title:       req.Title,
		Address:     req.Address,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
	}
	if req.City != nil {
		city := req.City.toCity()
		patch.City = &city
	}

	l, err := h.listingSvc.Update(c.Request.Context(), c.Param("id"), uid, patch)
	if err != nil {
		listingError(c, err)
		return
	}
	ok(c, http.StatusOK, l)
}

// DeleteListing godoc
// @ID          deleteListing
// @Summary     Delete a listing
// @Description Soft-deletes a listing. Only the owner may delete. Returns the removed listing.
// @Tags        Listings
// @Produce     json
//
// @Param       id  path  string  true  "Listing ID"
//
// @Success     200  {object}  domain.Listing
// @Failure     401  {object}  handlers.ErrorResponse  "No valid session"
// @Failure     403  {object}  handlers.ErrorResponse  "Not the owner"
// @Failure     404  {object}  handlers.ErrorResponse  "Listing not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /listings/{id} [delete]
func (h *Handlers) DeleteListing(c *gin.Context) {
	uid, proceed := mustUserID(c)
	if !proceed {
		return
	}

	l, err := h.listingSvc.Delete(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		listingError(c, err)
		return
	}
	ok(c, http.StatusOK, l)
}
