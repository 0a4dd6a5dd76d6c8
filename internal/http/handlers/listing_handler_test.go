package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/orendahub/go-rental-backend/internal/domain"
	"github.com/orendahub/go-rental-backend/internal/repo"
	"github.com/orendahub/go-rental-backend/internal/services"
)

func TestCreateListing_RequiresSession(t *testing.T) {
	h := newTestHandlers(stubAuthSvc{}, stubListingSvc{}, stubRequestSvc{}, stubContractSvc{}, stubGeoIdx{})

	body := `{"title":"Flat","address":"Main 1","price":1000,"city":{"geonameId":1,"name":"Kyiv"}}`
	req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewBufferString(body))
	w := serve(t, "", func(r *gin.Engine) { r.POST("/listings", h.CreateListing) }, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous create -> %d", w.Code)
	}
}

func TestCreateListing_Success(t *testing.T) {
	var gotOwner string
	var gotIn repo.ListingInput
	listings := stubListingSvc{create: func(_ context.Context, ownerID string, in repo.ListingInput) (*domain.Listing, error) {
		gotOwner, gotIn = ownerID, in
		return &domain.Listing{ID: "l1", OwnerID: ownerID, Title: in.Title, Price: in.Price, City: in.City}, nil
	}}
	h := newTestHandlers(stubAuthSvc{}, listings, stubRequestSvc{}, stubContractSvc{}, stubGeoIdx{})

	body := `{"title":"  Flat  ","address":"Main 1","description":"nice","price":1500.5,
		"city":{"geonameId":703448,"name":"Kyiv","nameUk":"Київ","lat":50.45,"lon":30.52},
		"images":["a.jpg","b.jpg"]}`
	req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewBufferString(body))
	w := serve(t, "owner-1", func(r *gin.Engine) { r.POST("/listings", h.CreateListing) }, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("create -> %d body=%s", w.Code, w.Body.String())
	}
	if gotOwner != "owner-1" {
		t.Fatalf("owner = %q", gotOwner)
	}
	if gotIn.Title != "Flat" { // trimmed
		t.Fatalf("title = %q", gotIn.Title)
	}
	if gotIn.City.GeonameID != 703448 || gotIn.Price != 1500.5 || len(gotIn.Images) != 2 {
		t.Fatalf("input not mapped: %+v", gotIn)
	}
}

func TestCreateListing_RejectsNonPositivePrice(t *testing.T) {
	h := newTestHandlers(stubAuthSvc{}, stubListingSvc{}, stubRequestSvc{}, stubContractSvc{}, stubGeoIdx{})

	body := `{"title":"Flat","address":"Main 1","price":0,"city":{"geonameId":1,"name":"Kyiv"}}`
	req := httptest.NewRequest(http.MethodPost, "/listings", bytes.NewBufferString(body))
	w := serve(t, "owner-1", func(r *gin.Engine) { r.POST("/listings", h.CreateListing) }, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("zero price -> %d", w.Code)
	}
}

func TestListListings_EnrichesOwnerAndFiltersCity(t *testing.T) {
	var gotCity int
	listings := stubListingSvc{list: func(_ context.Context, cityID int) ([]domain.Listing, error) {
		gotCity = cityID
		return []domain.Listing{
			{ID: "l1", OwnerID: "o1"},
			{ID: "l2", OwnerID: "o1"},
		}, nil
	}}
	auth := stubAuthSvc{getUser: func(_ context.Context, id string) (*domain.User, error) {
		return &domain.User{ID: id, FirstName: "Ivan", LastName: "Petrenko", Rating: 4.8}, nil
	}}
	h := newTestHandlers(auth, listings, stubRequestSvc{}, stubContractSvc{}, stubGeoIdx{})

	req := httptest.NewRequest(http.MethodGet, "/listings?cityId=703448", nil)
	w := serve(t, "", func(r *gin.Engine) { r.GET("/listings", h.ListListings) }, req)

	if w.Code != http.StatusOK {
		t.Fatalf("list -> %d", w.Code)
	}
	if gotCity != 703448 {
		t.Fatalf("cityID = %d", gotCity)
	}
	var out []ListingWithOwner
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("items = %d", len(out))
	}
	for _, it := range out {
		if it.Owner == nil || it.Owner.FirstName != "Ivan" || it.Owner.Rating != 4.8 {
			t.Fatalf("owner not embedded: %+v", it.Owner)
		}
	}
}

func TestListListings_MissingOwnerLeftBare(t *testing.T) {
	listings := stubListingSvc{list: func(context.Context, int) ([]domain.Listing, error) {
		return []domain.Listing{{ID: "l1", OwnerID: "ghost"}}, nil
	}}
	auth := stubAuthSvc{getUser: func(context.Context, string) (*domain.User, error) {
		return nil, services.ErrUserNotFound
	}}
	h := newTestHandlers(auth, listings, stubRequestSvc{}, stubContractSvc{}, stubGeoIdx{})

	req := httptest.NewRequest(http.MethodGet, "/listings", nil)
	w := serve(t, "", func(r *gin.Engine) { r.GET("/listings", h.ListListings) }, req)

	if w.Code != http.StatusOK {
		t.Fatalf("list -> %d", w.Code)
	}
	var out []ListingWithOwner
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(out) != 1 || out[0].Owner != nil {
		t.Fatalf("expected bare listing, got %+v", out)
	}
}

func TestGetListing_NotFound(t *testing.T) {
	listings := stubListingSvc{get: func(context.Context, string) (*domain.Listing, error) {
		return nil, services.ErrListingNotFound
	}}
	h := newTestHandlers(stubAuthSvc{}, listings, stubRequestSvc{}, stubContractSvc{}, stubGeoIdx{})

	req := httptest.NewRequest(http.MethodGet, "/listings/nope", nil)
	w := serve(t, "", func(r *gin.Engine) { r.GET("/listings/:id", h.GetListing) }, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("missing listing -> %d", w.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("json: %v", err)
	}
	if er.Code != ErrCodeNotFound {
		t.Fatalf("code = %q", er.Code)
	}
}

func TestUpdateListing_ErrorMappings(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"forbidden", services.ErrNotListingOwner, http.StatusForbidden},
		{"not_found", services.ErrListingNotFound, http.StatusNotFound},
		{"internal", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			listings := stubListingSvc{update: func(context.Context, string, string, repo.ListingPatch) (*domain.Listing, error) {
				return nil, tc.err
			}}
			h := newTestHandlers(stubAuthSvc{}, listings, stubRequestSvc{}, stubContractSvc{}, stubGeoIdx{})

			req := httptest.NewRequest(http.MethodPatch, "/listings/l1", bytes.NewBufferString(`{"title":"New"}`))
			w := serve(t, "u1", func(r *gin.Engine) { r.PATCH("/listings/:id", h.UpdateListing) }, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("%s -> %d; want %d", tc.name, w.Code, tc.wantStatus)
			}
		})
	}
}

func TestUpdateListing_MapsPatchFields(t *testing.T) {
	var got repo.ListingPatch
	listings := stubListingSvc{update: func(_ context.Context, id, uid string, patch repo.ListingPatch) (*domain.Listing, error) {
		got = patch
		return &domain.Listing{ID: id, OwnerID: uid}, nil
	}}
	h := newTestHandlers(stubAuthSvc{}, listings, stubRequestSvc{}, stubContractSvc{}, stubGeoIdx{})

	body := `{"price":2000,"city":{"geonameId":702550,"name":"Lviv"}}`
	req := httptest.NewRequest(http.MethodPatch, "/listings/l1", bytes.NewBufferString(body))
	w := serve(t, "u1", func(r *gin.Engine) { r.PATCH("/listings/:id", h.UpdateListing) }, req)

	if w.Code != http.StatusOK {
		t.Fatalf("patch -> %d body=%s", w.Code, w.Body.String())
	}
	if got.Title != nil || got.Address != nil {
		t.Fatalf("unexpected fields set: %+v", got)
	}
	if got.Price == nil || *got.Price != 2000 {
		t.Fatalf("price not mapped")
	}
	if got.City == nil || got.City.GeonameID != 702550 {
		t.Fatalf("city not mapped")
	}
}

func TestDeleteListing_ReturnsRemovedListing(t *testing.T) {
	listings := stubListingSvc{del: func(_ context.Context, id, uid string) (*domain.Listing, error) {
		return &domain.Listing{ID: id, OwnerID: uid, Title: "Gone"}, nil
	}}
	h := newTestHandlers(stubAuthSvc{}, listings, stubRequestSvc{}, stubContractSvc{}, stubGeoIdx{})

	req := httptest.NewRequest(http.MethodDelete, "/listings/l1", nil)
	w := serve(t, "u1", func(r *gin.Engine) { r.DELETE("/listings/:id", h.DeleteListing) }, req)

	if w.Code != http.StatusOK {
		t.Fatalf("delete -> %d", w.Code)
	}
	var l domain.Listing
	if err := json.Unmarshal(w.Body.Bytes(), &l); err != nil {
		t.Fatalf("json: %v", err)
	}
	if l.ID != "l1" || l.Title != "Gone" {
		t.Fatalf("unexpected body: %+v", l)
	}
}

func TestListMyListings(t *testing.T) {
	listings := stubListingSvc{listMine: func(_ context.Context, uid string) ([]domain.Listing, error) {
		return []domain.Listing{{ID: "l1", OwnerID: uid}}, nil
	}}
	h := newTestHandlers(stubAuthSvc{}, listings, stubRequestSvc{}, stubContractSvc{}, stubGeoIdx{})

	req := httptest.NewRequest(http.MethodGet, "/listings/my", nil)
	w := serve(t, "u1", func(r *gin.Engine) { r.GET("/listings/my", h.ListMyListings) }, req)

	if w.Code != http.StatusOK {
		t.Fatalf("my listings -> %d", w.Code)
	}
	var out []domain.Listing
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(out) != 1 || out[0].OwnerID != "u1" {
		t.Fatalf("unexpected body: %+v", out)
	}
}
