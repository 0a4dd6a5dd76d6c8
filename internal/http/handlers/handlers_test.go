package handlers

// Shared stubs satisfying the service interfaces consumed by the handlers.
// Individual tests override only the funcs they exercise; nil funcs fall back
// to benign defaults.

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/orendahub/go-rental-backend/internal/domain"
	"github.com/orendahub/go-rental-backend/internal/geo"
	"github.com/orendahub/go-rental-backend/internal/repo"
	"github.com/orendahub/go-rental-backend/internal/services"
)

type stubAuthSvc struct {
	register     func(ctx context.Context, in services.RegisterInput) (*domain.User, error)
	login        func(ctx context.Context, bankID string) (*domain.User, error)
	getUser      func(ctx context.Context, id string) (*domain.User, error)
	startSession func(ctx context.Context, userID string) (*domain.Session, error)
	endSession   func(ctx context.Context, token string) error
}

func (s stubAuthSvc) Register(ctx context.Context, in services.RegisterInput) (*domain.User, error) {
	if s.register != nil {
		return s.register(ctx, in)
	}
	return &domain.User{ID: "u-new", BankID: in.BankID, FirstName: in.FirstName, LastName: in.LastName}, nil
}

func (s stubAuthSvc) Login(ctx context.Context, bankID string) (*domain.User, error) {
	if s.login != nil {
		return s.login(ctx, bankID)
	}
	return &domain.User{ID: "u-login", BankID: bankID}, nil
}

func (s stubAuthSvc) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if s.getUser != nil {
		return s.getUser(ctx, id)
	}
	return &domain.User{ID: id, FirstName: "Олена", LastName: "Коваль", Rating: 4.5}, nil
}

func (s stubAuthSvc) StartSession(ctx context.Context, userID string) (*domain.Session, error) {
	if s.startSession != nil {
		return s.startSession(ctx, userID)
	}
	return &domain.Session{Token: "tok-1", UserID: userID}, nil
}

func (s stubAuthSvc) EndSession(ctx context.Context, token string) error {
	if s.endSession != nil {
		return s.endSession(ctx, token)
	}
	return nil
}

type stubListingSvc struct {
	create   func(ctx context.Context, ownerID string, in repo.ListingInput) (*domain.Listing, error)
	list     func(ctx context.Context, cityID int) ([]domain.Listing, error)
	listMine func(ctx context.Context, ownerID string) ([]domain.Listing, error)
	get      func(ctx context.Context, id string) (*domain.Listing, error)
	update   func(ctx context.Context, id, actingUserID string, patch repo.ListingPatch) (*domain.Listing, error)
	del      func(ctx context.Context, id, actingUserID string) (*domain.Listing, error)
}

func (s stubListingSvc) Create(ctx context.Context, ownerID string, in repo.ListingInput) (*domain.Listing, error) {
	if s.create != nil {
		return s.create(ctx, ownerID, in)
	}
	return &domain.Listing{ID: "l-new", OwnerID: ownerID, Title: in.Title}, nil
}

func (s stubListingSvc) List(ctx context.Context, cityID int) ([]domain.Listing, error) {
	if s.list != nil {
		return s.list(ctx, cityID)
	}
	return nil, nil
}

func (s stubListingSvc) ListMine(ctx context.Context, ownerID string) ([]domain.Listing, error) {
	if s.listMine != nil {
		return s.listMine(ctx, ownerID)
	}
	return nil, nil
}

func (s stubListingSvc) Get(ctx context.Context, id string) (*domain.Listing, error) {
	if s.get != nil {
		return s.get(ctx, id)
	}
	return &domain.Listing{ID: id, OwnerID: "owner-1"}, nil
}

func (s stubListingSvc) Update(ctx context.Context, id, actingUserID string, patch repo.ListingPatch) (*domain.Listing, error) {
	if s.update != nil {
		return s.update(ctx, id, actingUserID, patch)
	}
	return &domain.Listing{ID: id, OwnerID: actingUserID}, nil
}

func (s stubListingSvc) Delete(ctx context.Context, id, actingUserID string) (*domain.Listing, error) {
	if s.del != nil {
		return s.del(ctx, id, actingUserID)
	}
	return &domain.Listing{ID: id, OwnerID: actingUserID}, nil
}

type stubRequestSvc struct {
	create       func(ctx context.Context, listingID, tenantID string, in repo.RequestInput) (*domain.BookingRequest, error)
	listMine     func(ctx context.Context, tenantID string) ([]domain.BookingRequest, error)
	listIncoming func(ctx context.Context, ownerID string) ([]domain.BookingRequest, error)
	updateStatus func(ctx context.Context, requestID, actingUserID string, status domain.RequestStatus) (*domain.BookingRequest, error)
}

func (s stubRequestSvc) Create(ctx context.Context, listingID, tenantID string, in repo.RequestInput) (*domain.BookingRequest, error) {
	if s.create != nil {
		return s.create(ctx, listingID, tenantID, in)
	}
	return &domain.BookingRequest{ID: "r-new", ListingID: listingID, TenantID: tenantID, Status: domain.RequestPending}, nil
}

func (s stubRequestSvc) ListMine(ctx context.Context, tenantID string) ([]domain.BookingRequest, error) {
	if s.listMine != nil {
		return s.listMine(ctx, tenantID)
	}
	return nil, nil
}

func (s stubRequestSvc) ListIncoming(ctx context.Context, ownerID string) ([]domain.BookingRequest, error) {
	if s.listIncoming != nil {
		return s.listIncoming(ctx, ownerID)
	}
	return nil, nil
}

func (s stubRequestSvc) UpdateStatus(ctx context.Context, requestID, actingUserID string, status domain.RequestStatus) (*domain.BookingRequest, error) {
	if s.updateStatus != nil {
		return s.updateStatus(ctx, requestID, actingUserID, status)
	}
	return &domain.BookingRequest{ID: requestID, Status: status}, nil
}

type stubContractSvc struct {
	createFromRequest func(ctx context.Context, requestID, actingUserID string) (*domain.Contract, error)
	listMine          func(ctx context.Context, userID string) ([]domain.Contract, error)
	updateStatus      func(ctx context.Context, contractID, actingUserID string, status domain.ContractStatus) (*domain.Contract, error)
}

func (s stubContractSvc) CreateFromRequest(ctx context.Context, requestID, actingUserID string) (*domain.Contract, error) {
	if s.createFromRequest != nil {
		return s.createFromRequest(ctx, requestID, actingUserID)
	}
	return &domain.Contract{ID: "c-new", RequestID: requestID, Status: domain.ContractDraft}, nil
}

func (s stubContractSvc) ListMine(ctx context.Context, userID string) ([]domain.Contract, error) {
	if s.listMine != nil {
		return s.listMine(ctx, userID)
	}
	return nil, nil
}

func (s stubContractSvc) UpdateStatus(ctx context.Context, contractID, actingUserID string, status domain.ContractStatus) (*domain.Contract, error) {
	if s.updateStatus != nil {
		return s.updateStatus(ctx, contractID, actingUserID, status)
	}
	return &domain.Contract{ID: contractID, Status: status}, nil
}

type stubGeoIdx struct {
	search func(query string, limit int) []geo.Settlement
}

func (s stubGeoIdx) Search(query string, limit int) []geo.Settlement {
	if s.search != nil {
		return s.search(query, limit)
	}
	return nil
}

// newTestHandlers builds a Handlers with the given stubs. Pass zero values
// for layers a test does not touch.
func newTestHandlers(auth stubAuthSvc, listings stubListingSvc, requests stubRequestSvc, contracts stubContractSvc, idx stubGeoIdx) *Handlers {
	return New(auth, listings, requests, contracts, idx, CookieOptions{Name: "sid", MaxAge: 3600})
}

// asUser wires a fake session: the returned middleware injects uid the way
// the session middleware would.
func asUser(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid != "" {
			c.Set("userID", uid)
		}
		c.Next()
	}
}

// serve runs req through a fresh engine with the fake session applied.
func serve(t *testing.T, uid string, register func(r *gin.Engine), req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(asUser(uid))
	register(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
