// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements BearerAuth, the shared-token credential check guarding
// the ingestion endpoint. The check is a pure function of the Authorization
// header and the configured secret: no session state, no database lookup.
//
// Design notes:
//   - Fail-closed: when no secret is configured, every request is rejected.
//   - Only the bearer scheme is accepted; anything else is unauthorized.
//   - Comparison is constant-time to avoid leaking the secret via timing.
package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// bearerPrefix is the only accepted Authorization scheme. Matching is
// case-insensitive on the scheme per RFC 7235.
const bearerPrefix = "bearer "

// CheckBearer reports whether the Authorization header value carries a bearer
// token exactly equal to secret. An empty secret rejects everything.
func CheckBearer(header, secret string) bool {
	if secret == "" {
		return false
	}
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return false
	}
	token := header[len(bearerPrefix):]
	return subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1
}

// BearerAuth returns a Gin middleware that rejects requests lacking a valid
// bearer token with 401 {"error":"unauthorized"}. Place it on protected
// routes only; health and greeting stay reachable without credentials.
func BearerAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CheckBearer(c.GetHeader("Authorization"), secret) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
