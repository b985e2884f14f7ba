// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the originating-address allowlist. The allowlist is a
// flat set of addresses loaded from configuration; an empty set means no
// restriction. Address extraction prefers the first X-Forwarded-For entry
// (the service is expected to run behind a platform proxy) and falls back to
// the transport-level peer address.
package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// ClientAddr returns the originating address for the request: the first
// X-Forwarded-For entry when the header is present, otherwise the peer
// address with any port stripped.
func ClientAddr(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first := xff
		if i := strings.IndexByte(xff, ','); i >= 0 {
			first = xff[:i]
		}
		return strings.TrimSpace(first)
	}
	addr := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// IPAllowed reports whether addr passes the allowlist. An empty allowlist
// permits every address.
func IPAllowed(allowlist []string, addr string) bool {
	if len(allowlist) == 0 {
		return true
	}
	for _, a := range allowlist {
		if a == addr {
			return true
		}
	}
	return false
}
