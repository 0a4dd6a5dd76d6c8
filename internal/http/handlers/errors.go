// Package handlers defines the HTTP-layer error codes used across all API
// endpoints. The constants below are the stable `code` values emitted inside
// the ErrorResponse envelope (via fail()); clients branch on them instead of
// parsing messages.
//
// Conventions:
//   - Codes are lowercase snake_case.
//   - Generic codes mirror common HTTP status semantics (bad_request,
//     unauthorized, conflict, ...).
//   - Handlers pick the most specific matching code together with the
//     corresponding HTTP status.
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeForbidden    = "forbidden"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeRateLimited  = "too_many_requests"
	ErrCodeInternal     = "internal_error"

	ErrCodeMethodNotAllowed = "method_not_allowed"
)
