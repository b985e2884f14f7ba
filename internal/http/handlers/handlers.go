// Package handlers provides HTTP handler implementations for the public API.
//
// Handlers are transport-thin: they check the origin allowlist, validate and
// normalize inputs, delegate to application services, and translate service
// errors into the fixed wire shapes. Dependencies are injected at
// construction; there are no package-level singletons.
package handlers

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-ingest-backend/internal/domain"
)

// IngestService is the application-service contract required by the ingest
// handler. The concrete implementation lives in internal/services.
type IngestService interface {
	// Ingest persists the sender identity and message atomically.
	Ingest(ctx context.Context, userID, username string, displayName *string, message string) (*domain.Message, error)
}

// Handlers bundles the HTTP endpoints with their injected dependencies.
type Handlers struct {
	ingestSvc IngestService
	db        *gorm.DB
	allowIPs  []string
}

// New constructs the handler set. allowIPs is the configured origin
// allowlist; an empty slice disables the restriction.
func New(svc IngestService, db *gorm.DB, allowIPs []string) *Handlers {
	return &Handlers{
		ingestSvc: svc,
		db:        db,
		allowIPs:  allowIPs,
	}
}
