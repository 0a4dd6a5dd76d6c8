// Contract HTTP handlers.
//
// This file exposes REST endpoints for rental contracts:
//   - POST  /contracts/from-request/:requestId  (owner derives a DRAFT contract)
//   - PATCH /contracts/:id                      (party advances or cancels)
//   - GET   /contracts/my                       (contracts the user is party to)
//
// Status transitions are role checked in the service layer; the handlers only
// translate sentinel errors into status codes.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orendahub/go-rental-backend/internal/domain"
	"github.com/orendahub/go-rental-backend/internal/services"
)

// UpdateContractStatusPayload is the JSON payload for a contract transition.
type UpdateContractStatusPayload struct {
	Status string `json:"status" binding:"required" example:"SIGNED_BY_TENANT"`
}

// CreateContract godoc
// @ID          createContract
// @Summary     Derive a contract from a request
// @Description Creates a DRAFT contract from an APPROVED booking request. Only the listing owner may derive; price is copied from the listing and the date range from the request. At most one contract ever exists per request.
// @Tags        Contracts
// @Produce     json
//
// @Param       requestId  path  string  true  "Booking request ID"
//
// @Success     201  {object}  domain.Contract
// @Failure     400  {object}  handlers.ErrorResponse  "Request not approved"
// @Failure     401  {object}  handlers.ErrorResponse  "No valid session"
// @Failure     403  {object}  handlers.ErrorResponse  "Not the listing owner"
// @Failure     404  {object}  handlers.ErrorResponse  "Request or listing not found"
// @Failure     409  {object}  handlers.ErrorResponse  "Contract already exists"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /contracts/from-request/{requestId} [post]
func (h *Handlers) CreateContract(c *gin.Context) {
	uid, proceed := mustUserID(c)
	if !proceed {
		return
	}

	ct, err := h.contractSvc.CreateFromRequest(c.Request.Context(), c.Param("requestId"), uid)
	switch {
	case errors.Is(err, services.ErrRequestNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "request not found")
		return
	case errors.Is(err, services.ErrListingNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "listing not found")
		return
	case errors.Is(err, services.ErrNotListingOwner):
		fail(c, http.StatusForbidden, ErrCodeForbidden, "not the listing owner")
		return
	case errors.Is(err, services.ErrRequestNotApproved):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "request is not approved")
		return
	case errors.Is(err, services.ErrContractExists):
		fail(c, http.StatusConflict, ErrCodeConflict, "contract already exists for this request")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not create contract")
		return
	}
	ok(c, http.StatusCreated, ct)
}

// UpdateContractStatus godoc
// @ID          updateContractStatus
// @Summary     Advance or cancel a contract
// @Description Applies a status transition to a contract. The tenant signs DRAFT -> SIGNED_BY_TENANT, the owner counter-signs SIGNED_BY_TENANT -> SIGNED, and either party may cancel any not-yet-SIGNED contract. Full signing marks the originating request COMPLETED.
// @Tags        Contracts
// @Accept      json
// @Produce     json
//
// @Param       id    path  string                               true  "Contract ID"
// @Param       body  body  handlers.UpdateContractStatusPayload true  "New status"
//
// @Success     200  {object}  domain.Contract
// @Failure     400  {object}  handlers.ErrorResponse  "Transition not allowed"
// @Failure     401  {object}  handlers.ErrorResponse  "No valid session"
// @Failure     403  {object}  handlers.ErrorResponse  "Not a contract party"
// @Failure     404  {object}  handlers.ErrorResponse  "Contract not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /contracts/{id} [patch]
func (h *Handlers) UpdateContractStatus(c *gin.Context) {
	uid, proceed := mustUserID(c)
	if !proceed {
		return
	}

	var req UpdateContractStatusPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	ct, err := h.contractSvc.UpdateStatus(c.Request.Context(), c.Param("id"), uid, domain.ContractStatus(req.Status))
	switch {
	case errors.Is(err, services.ErrContractNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "contract not found")
		return
	case errors.Is(err, services.ErrNotContractParty):
		fail(c, http.StatusForbidden, ErrCodeForbidden, "not a contract party")
		return
	case errors.Is(err, services.ErrInvalidTransition):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "transition not allowed")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not update contract")
		return
	}
	ok(c, http.StatusOK, ct)
}

// ListMyContracts godoc
// @ID          listMyContracts
// @Summary     List my contracts
// @Description Returns the contracts where the current user is owner or tenant, newest first.
// @Tags        Contracts
// @Produce     json
//
// @Success     200  {array}   domain.Contract
// @Failure     401  {object}  handlers.ErrorResponse  "No valid session"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /contracts/my [get]
func (h *Handlers) ListMyContracts(c *gin.Context) {
	uid, proceed := mustUserID(c)
	if !proceed {
		return
	}

	items, err := h.contractSvc.ListMine(c.Request.Context(), uid)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not list contracts")
		return
	}
	ok(c, http.StatusOK, items)
}
