// Package services defines the business logic for the rental marketplace:
// identity, listings, booking requests, and contracts. This file centralizes
// common service-level error values so that they can be consistently returned
// by service methods and checked by callers with errors.Is.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer. The taxonomy is three families: not-found, forbidden, illegal-state.
package services

import "errors"

// Identity errors.
var (
	// ErrUserNotFound indicates an unknown user id or bank id.
	ErrUserNotFound = errors.New("user not found")

	// ErrBankIDTaken is returned when a registration reuses an existing
	// bank identifier.
	ErrBankIDTaken = errors.New("user with this bankId already exists")
)

// Listing errors.
var (
	// ErrListingNotFound indicates that the requested listing does not exist.
	ErrListingNotFound = errors.New("listing not found")

	// ErrNotListingOwner is returned when a user attempts to modify a
	// listing they do not own.
	ErrNotListingOwner = errors.New("only the listing owner may do this")
)

// Booking-request errors.
var (
	// ErrRequestNotFound indicates that the booking request does not exist,
	// or that its listing no longer resolves.
	ErrRequestNotFound = errors.New("booking request not found")

	// ErrSelfRequest is returned when a tenant tries to book their own listing.
	ErrSelfRequest = errors.New("cannot request your own listing")

	// ErrDuplicateRequest is returned when the tenant already has a PENDING
	// request against the same listing.
	ErrDuplicateRequest = errors.New("pending request already exists")

	// ErrListingRented is returned when the listing already has a fully
	// signed contract.
	ErrListingRented = errors.New("listing already has a signed contract")

	// ErrInvalidRequestStatus is returned when a status update names a value
	// outside the request status enum.
	ErrInvalidRequestStatus = errors.New("invalid request status")
)

// Contract errors.
var (
	// ErrContractNotFound indicates that the contract does not exist.
	ErrContractNotFound = errors.New("contract not found")

	// ErrNotContractParty is returned when the acting user is neither the
	// contract owner nor its tenant.
	ErrNotContractParty = errors.New("not a party of this contract")

	// ErrRequestNotApproved is returned when a contract is created from a
	// request that is not APPROVED.
	ErrRequestNotApproved = errors.New("request must be APPROVED to create a contract")

	// ErrContractExists is returned when a contract already references the
	// request, regardless of that contract's current status.
	ErrContractExists = errors.New("contract for this request already exists")

	// ErrInvalidTransition is returned when the requested contract status
	// change is not a legal edge for the acting party.
	ErrInvalidTransition = errors.New("invalid status transition")
)
