// Package domain defines the persistence models for users, listings, booking
// requests, and rental contracts. These types are mapped with GORM and form
// the core data layer of the rental marketplace backend.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered participant. The same account can act as a
// landlord (owner of listings) and as a tenant (author of booking requests).
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - BankID: external bank identity used for passwordless login; unique.
//   - FirstName / LastName: display name parts.
//   - Phone: contact phone in free form.
//   - Rating: reputation score; mutated only by a future rating feature.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker.
type User struct {
	ID        string         `json:"id"        gorm:"type:char(36);primaryKey"`
	BankID    string         `json:"bankId"    gorm:"type:varchar(64);not null;uniqueIndex:ux_users_bank_id"`
	FirstName string         `json:"firstName" gorm:"type:varchar(100);not null"`
	LastName  string         `json:"lastName"  gorm:"type:varchar(100);not null"`
	Phone     string         `json:"phone"     gorm:"type:varchar(32);not null"`
	Rating    float64        `json:"rating"    gorm:"not null;default:0"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"         gorm:"index"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// City is the geoname descriptor attached to a listing. It is stored inline
// (embedded) rather than as a separate aggregate: a listing carries a snapshot
// of the settlement it was created with.
type City struct {
	GeonameID int     `json:"geonameId"        gorm:"column:city_geoname_id;index:idx_listings_city"`
	Name      string  `json:"name"             gorm:"column:city_name;type:varchar(200)"`
	NameUk    string  `json:"nameUk,omitempty" gorm:"column:city_name_uk;type:varchar(200)"`
	Admin1    string  `json:"admin1,omitempty" gorm:"column:city_admin1;type:varchar(20)"`
	Admin2    string  `json:"admin2,omitempty" gorm:"column:city_admin2;type:varchar(20)"`
	Lat       float64 `json:"lat"              gorm:"column:city_lat"`
	Lon       float64 `json:"lon"              gorm:"column:city_lon"`
}

// Listing represents a rentable unit posted by a landlord. Exactly one user
// owns a listing; requests and contracts reference it by id only and
// re-resolve it on every access.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - OwnerID: identifier of the posting landlord; indexed for owner queries.
//   - Title / Address / Description: free-form descriptive fields.
//   - Price: monthly price, copied into contracts at creation time.
//   - City: embedded geoname descriptor (city_* columns).
//   - Images: JSON-encoded list of image references.
type Listing struct {
	ID          string         `json:"id"          gorm:"type:char(36);primaryKey"`
	OwnerID     string         `json:"ownerId"     gorm:"type:char(36);not null;index:idx_listings_owner"`
	Title       string         `json:"title"       gorm:"type:varchar(255);not null"`
	Address     string         `json:"address"     gorm:"type:varchar(255);not null"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Price       float64        `json:"price"       gorm:"not null"`
	City        City           `json:"city"        gorm:"embedded"`
	Images      ImageList      `json:"images"      gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-"           gorm:"index"`
}

// TableName returns the database table name for Listing.
func (Listing) TableName() string { return "listings" }

// BookingRequest is a tenant's request to view/rent a specific listing. The
// tenant creates it PENDING; only the listing owner moves it to APPROVED or
// REJECTED; the contract engine forces it to COMPLETED when the derived
// contract is fully signed.
//
// Constraints:
//   - A tenant cannot request their own listing (enforced in the service).
//   - At most one PENDING request per (listing, tenant) pair; backed by a
//     partial unique index so concurrent creates collapse to a conflict.
type BookingRequest struct {
	ID        string         `json:"id"        gorm:"type:char(36);primaryKey"`
	ListingID string         `json:"listingId" gorm:"type:char(36);not null;index:idx_requests_listing"`
	TenantID  string         `json:"tenantId"  gorm:"type:char(36);not null;index:idx_requests_tenant"`
	Status    RequestStatus  `json:"status"    gorm:"type:varchar(16);not null;check:status IN ('PENDING','APPROVED','REJECTED','COMPLETED')"`
	Message   string         `json:"message,omitempty" gorm:"type:text"`
	From      string         `json:"from,omitempty"    gorm:"type:varchar(10)"` // YYYY-MM-DD
	To        string         `json:"to,omitempty"      gorm:"type:varchar(10)"` // YYYY-MM-DD
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the database table name for BookingRequest.
func (BookingRequest) TableName() string { return "booking_requests" }

// Contract is the binding agreement derived from an approved booking request.
// Price is copied from the listing and the date range from the request at
// creation time; both are immutable afterwards. At most one contract ever
// exists per request (unique index on request_id), even after cancellation.
type Contract struct {
	ID        string         `json:"id"        gorm:"type:char(36);primaryKey"`
	RequestID string         `json:"requestId" gorm:"type:char(36);not null;uniqueIndex:ux_contracts_request"`
	ListingID string         `json:"listingId" gorm:"type:char(36);not null;index:idx_contracts_listing"`
	OwnerID   string         `json:"ownerId"   gorm:"type:char(36);not null;index:idx_contracts_owner"`
	TenantID  string         `json:"tenantId"  gorm:"type:char(36);not null;index:idx_contracts_tenant"`
	Price     float64        `json:"price"     gorm:"not null"`
	From      string         `json:"from"      gorm:"type:varchar(10);not null"`
	To        string         `json:"to"        gorm:"type:varchar(10);not null"`
	Status    ContractStatus `json:"status"    gorm:"type:varchar(20);not null;check:status IN ('DRAFT','SIGNED_BY_TENANT','SIGNED','CANCELLED')"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the database table name for Contract.
func (Contract) TableName() string { return "contracts" }

// Session is a server-side login session referenced by an opaque cookie token.
// Expired rows are ignored on lookup and swept lazily.
type Session struct {
	Token     string         `json:"-" gorm:"type:char(36);primaryKey"`
	UserID    string         `json:"-" gorm:"type:char(36);not null;index:idx_sessions_user"`
	ExpiresAt time.Time      `json:"-" gorm:"not null;index:idx_sessions_expiry"`
	CreatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the database table name for Session.
func (Session) TableName() string { return "sessions" }
