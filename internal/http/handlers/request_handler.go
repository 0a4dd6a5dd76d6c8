// Booking request HTTP handlers.
//
// This file exposes REST endpoints for booking requests:
//   - POST  /listings/:id/requests  (tenant asks to rent a listing)
//   - GET   /requests/my            (requests the current user sent)
//   - GET   /requests/incoming      (requests against the current user's listings)
//   - PATCH /requests/:id           (owner approves/rejects)
//
// List responses embed the resolved listing and tenant so review screens can
// be rendered from a single call.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orendahub/go-rental-backend/internal/domain"
	"github.com/orendahub/go-rental-backend/internal/repo"
	"github.com/orendahub/go-rental-backend/internal/services"
)

//
// DTOs
//

// CreateRequestPayload is the JSON payload for creating a booking request.
// The date range is optional free intent; it becomes binding only when a
// contract is derived.
type CreateRequestPayload struct {
	Message string `json:"message" binding:"omitempty,max=2000" example:"Добрий день! Хочу орендувати з жовтня."`
	From    string `json:"from" binding:"omitempty,datetime=2006-01-02" example:"2026-10-01"`
	To      string `json:"to" binding:"omitempty,datetime=2006-01-02" example:"2027-09-30"`
}

// UpdateRequestStatusPayload is the JSON payload for an owner's decision.
type UpdateRequestStatusPayload struct {
	Status string `json:"status" binding:"required" example:"APPROVED"`
}

// RequestWithDetails decorates a booking request with its listing and tenant.
type RequestWithDetails struct {
	domain.BookingRequest
	Listing *domain.Listing `json:"listing,omitempty"`
	Tenant  *UserSummary    `json:"tenant,omitempty"`
}

//
// Helpers
//

// withDetails joins requests with their listings and tenants. Lookups are
// best effort; a request whose listing has since been deleted is returned
// bare rather than dropped.
func (h *Handlers) withDetails(c *gin.Context, items []domain.BookingRequest) []RequestWithDetails {
	ctx := c.Request.Context()

	tenantIDs := make([]string, 0, len(items))
	for i := range items {
		tenantIDs = append(tenantIDs, items[i].TenantID)
	}
	tenants := h.userSummaries(ctx, tenantIDs)

	listings := make(map[string]*domain.Listing, len(items))
	out := make([]RequestWithDetails, 0, len(items))
	for i := range items {
		lid := items[i].ListingID
		if _, seen := listings[lid]; !seen {
			l, err := h.listingSvc.Get(ctx, lid)
			if err != nil {
				l = nil
			}
			listings[lid] = l
		}
		out = append(out, RequestWithDetails{
			BookingRequest: items[i],
			Listing:        listings[lid],
			Tenant:         tenants[items[i].TenantID],
		})
	}
	return out
}

//
// Handlers
//

// CreateRequest godoc
// @ID          createRequest
// @Summary     Request a listing
// @Description Creates a PENDING booking request from the current user against the listing. Owners cannot request their own listings; a tenant holds at most one PENDING request per listing; an already rented listing rejects new requests.
// @Tags        Requests
// @Accept      json
// @Produce     json
//
// @Param       id    path  string                        true  "Listing ID"
// @Param       body  body  handlers.CreateRequestPayload true  "Request payload"
//
// @Success     201  {object}  domain.BookingRequest
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "No valid session"
// @Failure     403  {object}  handlers.ErrorResponse  "Own listing"
// @Failure     404  {object}  handlers.ErrorResponse  "Listing not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Duplicate pending request or listing already rented"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /listings/{id}/requests [post]
func (h *Handlers) CreateRequest(c *gin.Context) {
	uid, proceed := mustUserID(c)
	if !proceed {
		return
	}

	var req CreateRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	r, err := h.requestSvc.Create(c.Request.Context(), c.Param("id"), uid, repo.RequestInput{
		Message: req.Message,
		From:    req.From,
		To:      req.To,
	})
	switch {
	case errors.Is(err, services.ErrListingNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "listing not found")
		return
	case errors.Is(err, services.ErrSelfRequest):
		fail(c, http.StatusForbidden, ErrCodeForbidden, "cannot request own listing")
		return
	case errors.Is(err, services.ErrListingRented):
		fail(c, http.StatusConflict, ErrCodeConflict, "listing already rented")
		return
	case errors.Is(err, services.ErrDuplicateRequest):
		fail(c, http.StatusConflict, ErrCodeConflict, "pending request already exists")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not create request")
		return
	}
	ok(c, http.StatusCreated, r)
}

// ListMyRequests godoc
// @ID          listMyRequests
// @Summary     List my requests
// @Description Returns the booking requests the current user sent, enriched with the listing.
// @Tags        Requests
// @Produce     json
//
// @Success     200  {array}   handlers.RequestWithDetails
// @Failure     401  {object}  handlers.ErrorResponse  "No valid session"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /requests/my [get]
func (h *Handlers) ListMyRequests(c *gin.Context) {
	uid, proceed := mustUserID(c)
	if !proceed {
		return
	}

	items, err := h.requestSvc.ListMine(c.Request.Context(), uid)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not list requests")
		return
	}
	ok(c, http.StatusOK, h.withDetails(c, items))
}

// ListIncomingRequests godoc
// @ID          listIncomingRequests
// @Summary     List incoming requests
// @Description Returns the booking requests against the current user's listings, enriched with listing and tenant. The owner set is resolved at call time.
// @Tags        Requests
// @Produce     json
//
// @Success     200  {array}   handlers.RequestWithDetails
// @Failure     401  {object}  handlers.ErrorResponse  "No valid session"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /requests/incoming [get]
func (h *Handlers) ListIncomingRequests(c *gin.Context) {
	uid, proceed := mustUserID(c)
	if !proceed {
		return
	}

	items, err := h.requestSvc.ListIncoming(c.Request.Context(), uid)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not list requests")
		return
	}
	ok(c, http.StatusOK, h.withDetails(c, items))
}

// UpdateRequestStatus godoc
// @ID          updateRequestStatus
// @Summary     Decide on a request
// @Description Sets a booking request's status. Only the owner of the underlying listing may decide; the status must be one of PENDING, APPROVED, REJECTED, COMPLETED.
// @Tags        Requests
// @Accept      json
// @Produce     json
//
// @Param       id    path  string                              true  "Request ID"
// @Param       body  body  handlers.UpdateRequestStatusPayload true  "New status"
//
// @Success     200  {object}  domain.BookingRequest
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid status"
// @Failure     401  {object}  handlers.ErrorResponse  "No valid session"
// @Failure     403  {object}  handlers.ErrorResponse  "Not the listing owner"
// @Failure     404  {object}  handlers.ErrorResponse  "Request not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /requests/{id} [patch]
func (h *Handlers) UpdateRequestStatus(c *gin.Context) {
	uid, proceed := mustUserID(c)
	if !proceed {
		return
	}

	var req UpdateRequestStatusPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	r, err := h.requestSvc.UpdateStatus(c.Request.Context(), c.Param("id"), uid, domain.RequestStatus(req.Status))
	switch {
	case errors.Is(err, services.ErrInvalidRequestStatus):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid request status")
		return
	case errors.Is(err, services.ErrRequestNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "request not found")
		return
	case errors.Is(err, services.ErrNotListingOwner):
		fail(c, http.StatusForbidden, ErrCodeForbidden, "not the listing owner")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not update request")
		return
	}
	ok(c, http.StatusOK, r)
}
