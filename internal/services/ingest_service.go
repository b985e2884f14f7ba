// Package services – IngestService
//
// This file implements the IngestService, which owns the ingestion unit of
// work: it normalizes and re-validates the caller-supplied fields, then
// persists the sender identity and the message atomically in one database
// transaction (user upsert first, message insert second, so the foreign
// reference always resolves).
//
// Service-level errors (e.g., ErrMissingFields) are returned for predictable
// cases so handlers can map them to HTTP results consistently; anything else
// is a store failure and surfaces as-is for the handler to log and coarsen.
package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"

	"github.com/tbourn/go-ingest-backend/internal/domain"
	"github.com/tbourn/go-ingest-backend/internal/repo"
)

// IngestService persists ingested telemetry messages and their sender
// identities. All exported methods are safe for concurrent use; the only
// shared state is the GORM handle, which pools connections internally.
type IngestService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// MaxMessageRunes caps the stored message text by rune length. Zero (the
	// default) disables the cap: messages of any length are accepted.
	MaxMessageRunes int
}

// NewIngestService constructs an IngestService with no message length cap.
// Deployments opt in via MAX_MESSAGE_RUNES.
func NewIngestService(db *gorm.DB) *IngestService {
	return &IngestService{DB: db}
}

// Ingest upserts the User row identified by userID (overwriting username and
// display name, last-write-wins) and inserts a new Message row referencing
// it, all within a single transaction. On any store error the transaction is
// rolled back and the error is returned; the store never retains a partial
// write from a failed ingestion.
//
// displayName may be nil, in which case the stored display_name becomes NULL
// even when a previous ingestion had set a value.
func (s *IngestService) Ingest(ctx context.Context, userID, username string, displayName *string, message string) (*domain.Message, error) {
	tr := otel.Tracer("services/IngestService")
	ctx, span := tr.Start(ctx, "Ingest",
		trace.WithAttributes(
			attribute.String("user.id", userID),
		),
	)
	defer span.End()

	// Normalize & re-guard. The handler validates presence at the edge, but
	// the service must hold on its own for non-HTTP callers.
	userID = normalize(userID)
	username = normalize(username)
	message = normalize(message)
	if userID == "" || username == "" || message == "" {
		return nil, ErrMissingFields
	}
	if s.MaxMessageRunes > 0 && utf8.RuneCountInString(message) > s.MaxMessageRunes {
		return nil, ErrTooLong
	}
	if displayName != nil {
		dn := normalize(*displayName)
		if dn == "" {
			displayName = nil
		} else {
			displayName = &dn
		}
	}

	// Persist user + message in one transaction: commit on nil, rollback on
	// error with the unit-of-work error re-returned to the caller.
	var msg *domain.Message
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := repo.UpsertUser(ctx, tx, userID, username, displayName); err != nil {
			return err
		}
		m, err := repo.CreateMessage(ctx, tx, userID, message)
		if err != nil {
			return err
		}
		msg = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// normalize trims surrounding whitespace and applies Unicode NFC so that
// equal-looking identifiers compare (and upsert) equal.
func normalize(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}
