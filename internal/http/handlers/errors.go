// Package handlers defines HTTP-layer error codes used across all API
// endpoints.
//
// These codes are the exact client-visible `error` strings of the wire
// contract; they are fixed and must not be renamed. Handlers select the most
// specific matching code and pass it to fail() with the corresponding HTTP
// status. Detail beyond the code (store errors, stack traces) is logged
// server-side only.
package handlers

const (
	ErrCodeUnauthorized  = "unauthorized"
	ErrCodeForbiddenIP   = "forbidden_ip"
	ErrCodeMissingFields = "missing fields"
	ErrCodeServerError   = "server_error"
	ErrCodeNotFound      = "not_found"
	ErrCodeDBUnreachable = "db_unreachable"
)

// requiredFields is echoed in the 400 validation response so callers can see
// the mandatory payload keys without consulting documentation.
var requiredFields = []string{"userId", "username", "message"}
