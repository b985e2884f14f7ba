// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response envelopes used across all
// endpoints. The wire shapes are fixed and deliberately coarse: error bodies
// carry a stable machine-readable `error` string and nothing else (plus the
// `required` field list on validation failures), and success bodies are
// `{"ok": true}`. Internal error detail stays in the server logs, keyed by
// the X-Request-ID correlation header.
//
// Conventions:
//   - fail() centralizes error formatting and ensures 5xx responses are
//     logged with request context.
//   - ok() writes the uniform success envelope.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-ingest-backend/internal/http/middleware"
)

// ErrorResponse is the fixed error envelope returned by all endpoints.
//
// Error is a stable, machine-readable string (see errors.go constants).
// Required lists the mandatory request fields; it is only populated on
// validation failures.
type ErrorResponse struct {
	Error    string   `json:"error" example:"unauthorized"`
	Required []string `json:"required,omitempty" example:"userId,username,message"`
}

// OKResponse is the fixed success envelope.
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

// HealthResponse reports store reachability for liveness probes.
type HealthResponse struct {
	OK    bool   `json:"ok" example:"true"`
	Error string `json:"error,omitempty" example:"db_unreachable"`
}

// fail aborts the request with the fixed error envelope. Server errors
// (>= 500) are logged with the request-scoped logger; the cause is passed
// separately so it never reaches the client body.
func fail(c *gin.Context, status int, code string, cause error) {
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Err(cause).
			Msg("api error")
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: code})
}

// Fail is the exported variant of fail(), for router-level fallbacks.
func Fail(c *gin.Context, status int, code string) { fail(c, status, code, nil) }

// ok writes the uniform success envelope with the given HTTP status.
func ok(c *gin.Context, status int) {
	c.JSON(status, OKResponse{OK: true})
}
