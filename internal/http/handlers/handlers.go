// Handler wiring.
//
// This file declares the service contracts consumed by the HTTP layer and the
// Handlers aggregate that binds them together. Handlers are transport-thin:
// they validate input, call application services, and translate sentinel
// errors into HTTP responses. Business rules live in internal/services.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orendahub/go-rental-backend/internal/domain"
	"github.com/orendahub/go-rental-backend/internal/geo"
	"github.com/orendahub/go-rental-backend/internal/repo"
	"github.com/orendahub/go-rental-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// AuthService defines the identity and session operations consumed by the
// HTTP layer. Implementations must be safe for concurrent use and honor the
// provided context.
type AuthService interface {
	// Register creates a new user keyed by a unique bank identifier.
	Register(ctx context.Context, in services.RegisterInput) (*domain.User, error)
	// Login resolves a user by bank identifier.
	Login(ctx context.Context, bankID string) (*domain.User, error)
	// GetUser fetches a user by id.
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// StartSession issues a new server-side session for userID.
	StartSession(ctx context.Context, userID string) (*domain.Session, error)
	// EndSession revokes the session identified by token.
	EndSession(ctx context.Context, token string) error
}

// ListingService defines listing lifecycle operations.
type ListingService interface {
	Create(ctx context.Context, ownerID string, in repo.ListingInput) (*domain.Listing, error)
	List(ctx context.Context, cityID int) ([]domain.Listing, error)
	ListMine(ctx context.Context, ownerID string) ([]domain.Listing, error)
	Get(ctx context.Context, id string) (*domain.Listing, error)
	Update(ctx context.Context, id, actingUserID string, patch repo.ListingPatch) (*domain.Listing, error)
	Delete(ctx context.Context, id, actingUserID string) (*domain.Listing, error)
}

// RequestService defines booking-request operations.
type RequestService interface {
	Create(ctx context.Context, listingID, tenantID string, in repo.RequestInput) (*domain.BookingRequest, error)
	ListMine(ctx context.Context, tenantID string) ([]domain.BookingRequest, error)
	ListIncoming(ctx context.Context, ownerID string) ([]domain.BookingRequest, error)
	UpdateStatus(ctx context.Context, requestID, actingUserID string, status domain.RequestStatus) (*domain.BookingRequest, error)
}

// ContractService defines contract operations.
type ContractService interface {
	CreateFromRequest(ctx context.Context, requestID, actingUserID string) (*domain.Contract, error)
	ListMine(ctx context.Context, userID string) ([]domain.Contract, error)
	UpdateStatus(ctx context.Context, contractID, actingUserID string, status domain.ContractStatus) (*domain.Contract, error)
}

//
// Handler wiring
//

// CookieOptions configures the session cookie the auth endpoints emit.
type CookieOptions struct {
	// Name is the cookie name (e.g. "sid").
	Name string
	// MaxAge is the cookie lifetime in seconds; it should match the
	// server-side session TTL.
	MaxAge int
	// Secure marks the cookie HTTPS-only. Keep false for local HTTP dev.
	Secure bool
}

// Handlers groups HTTP endpoints for auth, listings, booking requests,
// contracts, and settlement search. It depends on abstract service
// interfaces to keep transport concerns separate from business logic.
type Handlers struct {
	authSvc     AuthService
	listingSvc  ListingService
	requestSvc  RequestService
	contractSvc ContractService
	geoIdx      geo.Index
	cookie      CookieOptions
}

// New constructs a Handlers instance bound to the given services.
func New(auth AuthService, listings ListingService, requests RequestService, contracts ContractService, geoIdx geo.Index, cookie CookieOptions) *Handlers {
	if cookie.Name == "" {
		cookie.Name = "sid"
	}
	return &Handlers{
		authSvc:     auth,
		listingSvc:  listings,
		requestSvc:  requests,
		contractSvc: contracts,
		geoIdx:      geoIdx,
		cookie:      cookie,
	}
}

// currentUserID extracts the authenticated user id placed in the Gin context
// by the session middleware. An empty result means the request is anonymous.
func currentUserID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// mustUserID is currentUserID plus the 401 guard. It aborts with a uniform
// unauthorized envelope when no session user is present and reports whether
// the caller may proceed.
func mustUserID(c *gin.Context) (string, bool) {
	uid := currentUserID(c)
	if uid == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return "", false
	}
	return uid, true
}

//
// Shared response shapes
//

// UserSummary is the compact user projection embedded in enriched listing and
// request payloads.
type UserSummary struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Rating    float64 `json:"rating"`
}

// summarize converts a full user into its embedded projection.
func summarize(u *domain.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Rating:    u.Rating,
	}
}

// userSummaries resolves the given user ids to summaries, one lookup per
// distinct id. Missing users are skipped; enrichment is best effort.
func (h *Handlers) userSummaries(ctx context.Context, ids []string) map[string]*UserSummary {
	out := make(map[string]*UserSummary, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, seen := out[id]; seen {
			continue
		}
		u, err := h.authSvc.GetUser(ctx, id)
		if err != nil {
			continue
		}
		out[id] = summarize(u)
	}
	return out
}
