// Package services – ContractService
//
// This file implements the contract engine. A contract is derived from an
// APPROVED booking request by the listing owner, then signed bilaterally:
// tenant first (SIGNED_BY_TENANT), owner second (SIGNED). Either party may
// cancel before full signature. Transition legality is the strict edge table
// in domain.AllowedContractTransition.
//
// Reaching SIGNED back-propagates COMPLETED onto the originating request in
// the same transaction. The propagation is best-effort with respect to the
// request's existence: if the request id no longer resolves, the contract
// update still succeeds.
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/orendahub/go-rental-backend/internal/domain"
	"github.com/orendahub/go-rental-backend/internal/repo"
)

// ContractService implements the contract workflow.
type ContractService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// CreateFromRequest builds a DRAFT contract from an approved booking request.
//
// Validation order (first failure wins):
//   - request must exist                  → ErrRequestNotFound
//   - its listing must resolve            → ErrListingNotFound
//   - acting user must own the listing    → ErrNotListingOwner
//   - request must be APPROVED            → ErrRequestNotApproved
//   - no contract yet for this request    → ErrContractExists
//
// Price is copied from the listing; the date range from the request, falling
// back to the current date when the request has no explicit range. The
// request_id unique index turns a lost creation race into ErrContractExists.
func (s *ContractService) CreateFromRequest(ctx context.Context, requestID, actingUserID string) (*domain.Contract, error) {
	var created *domain.Contract
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
				return ErrListingNotFound
			}
			return err
		}

		if listing.OwnerID != actingUserID {
			return ErrNotListingOwner
		}
		if req.Status != domain.RequestApproved {
			return ErrRequestNotApproved
		}

		exists, err := repo.ContractExistsForRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if exists {
			return ErrContractExists
		}

		from, to := req.From, req.To
		if from == "" {
			from = time.Now().UTC().Format("2006-01-02")
		}
		if to == "" {
			to = time.Now().UTC().Format("2006-01-02")
		}

		created, err = repo.CreateContract(ctx, tx, repo.ContractInput{
			RequestID: requestID,
			ListingID: req.ListingID,
			OwnerID:   listing.OwnerID,
			TenantID:  req.TenantID,
			Price:     listing.Price,
			From:      from,
			To:        to,
		})
		if err != nil {
			if isDuplicate(err) {
				return ErrContractExists
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

// ListMine returns all contracts where userID is owner or tenant, newest first.
func (s *ContractService) ListMine(ctx context.Context, userID string) ([]domain.Contract, error) {
	return repo.ListContractsByParticipant(ctx, s.DB, userID)
}

// UpdateStatus moves a contract along its state machine on behalf of one of
// its parties.
//
// Failure modes:
//   - unknown contract id                         → ErrContractNotFound
//   - acting user is neither owner nor tenant     → ErrNotContractParty
//   - edge not legal for (role, current, next)    → ErrInvalidTransition
//
// When the transition newly reaches SIGNED, the originating request is forced
// to COMPLETED inside the same transaction. A request id that no longer
// resolves is ignored: the contract update still stands.
func (s *ContractService) UpdateStatus(ctx context.Context, contractID, actingUserID string, status domain.ContractStatus) (*domain.Contract, error) {
	if !status.Valid() {
		return nil, ErrInvalidTransition
	}

	var updated *domain.Contract
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := repo.GetContract(ctx, tx, contractID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrContractNotFound
			}
			return err
		}

		role := c.RoleOf(actingUserID)
		if role == domain.RoleNone {
			return ErrNotContractParty
		}
		if !domain.AllowedContractTransition(role, c.Status, status) {
			return ErrInvalidTransition
		}

		if err := repo.UpdateContractStatus(ctx, tx, contractID, status); err != nil {
			return err
		}

		if c.Status != domain.ContractSigned && status == domain.ContractSigned {
			err := repo.UpdateRequestStatus(ctx, tx, c.RequestID, domain.RequestCompleted)
			if err != nil && !errors.Is(err, repo.ErrNotFound) {
				return err
			}
		}

		c.Status = status
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
