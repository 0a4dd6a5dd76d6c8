// Status enums and transition rules for booking requests and contracts.
//
// The contract state machine is the only place in the system with non-trivial
// transition legality, so it lives here as pure value logic: the services
// layer asks AllowedContractTransition and the database check constraints
// guard the stored values.
package domain

// RequestStatus is the lifecycle state of a BookingRequest.
type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestApproved  RequestStatus = "APPROVED"
	RequestRejected  RequestStatus = "REJECTED"
	RequestCompleted RequestStatus = "COMPLETED"
)

// Valid reports whether s is one of the known request statuses.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected, RequestCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further user-driven transition applies.
// APPROVED is not terminal: the contract engine may still force COMPLETED.
func (s RequestStatus) Terminal() bool {
	return s == RequestRejected || s == RequestCompleted
}

// ContractStatus is the lifecycle state of a Contract.
type ContractStatus string

const (
	ContractDraft          ContractStatus = "DRAFT"
	ContractSignedByTenant ContractStatus = "SIGNED_BY_TENANT"
	ContractSigned         ContractStatus = "SIGNED"
	ContractCancelled      ContractStatus = "CANCELLED"
)

// Valid reports whether s is one of the known contract statuses.
func (s ContractStatus) Valid() bool {
	switch s {
	case ContractDraft, ContractSignedByTenant, ContractSigned, ContractCancelled:
		return true
	}
	return false
}

// Terminal reports whether the contract reached a final state.
func (s ContractStatus) Terminal() bool {
	return s == ContractSigned || s == ContractCancelled
}

// ContractRole identifies which party of a contract is acting.
type ContractRole int

const (
	// RoleNone means the acting user is neither owner nor tenant.
	RoleNone ContractRole = iota
	RoleOwner
	RoleTenant
)

// RoleOf resolves the acting user's role on a contract.
func (c *Contract) RoleOf(userID string) ContractRole {
	switch userID {
	case c.OwnerID:
		return RoleOwner
	case c.TenantID:
		return RoleTenant
	}
	return RoleNone
}

// AllowedContractTransition reports whether the acting role may move a
// contract from one status to another. Legal edges:
//
//	DRAFT            → SIGNED_BY_TENANT  (tenant only)
//	SIGNED_BY_TENANT → SIGNED            (owner only)
//	any non-SIGNED   → CANCELLED         (either party)
//
// Everything else, including no-op transitions, is illegal.
func AllowedContractTransition(role ContractRole, from, to ContractStatus) bool {
	switch {
	case role == RoleTenant && from == ContractDraft && to == ContractSignedByTenant:
		return true
	case role == RoleOwner && from == ContractSignedByTenant && to == ContractSigned:
		return true
	case (role == RoleOwner || role == RoleTenant) && from != ContractSigned && to == ContractCancelled:
		return true
	}
	return false
}
