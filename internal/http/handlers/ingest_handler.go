// Ingestion HTTP handler.
//
// This file exposes the single write endpoint of the service:
//   - POST /ingest  (persist a telemetry message and upsert its sender)
//
// The bearer-token credential check runs as router-level middleware before
// this handler. Inside the handler the order is fixed: origin allowlist
// first, then field validation, then the transactional persistence call.
// Nothing is written to the store on any rejection path.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-ingest-backend/internal/http/middleware"
	"github.com/tbourn/go-ingest-backend/internal/services"
)

//
// DTOs
//

// IngestRequest is the JSON payload accepted by POST /ingest.
//
// userId, username, and message are required and must be non-empty after
// trimming. displayName is optional; when omitted the stored display name is
// cleared even if a previous ingestion for the same userId had set one.
type IngestRequest struct {
	// UserID is the caller-supplied stable sender identifier.
	UserID string `json:"userId" example:"42"`
	// Username is the sender's current username.
	Username string `json:"username" example:"alice"`
	// Message is the telemetry message text.
	Message string `json:"message" example:"hello"`
	// DisplayName is the sender's optional display name.
	DisplayName *string `json:"displayName,omitempty" example:"Alice"`
}

// Ingest godoc
// @ID          ingest
// @Summary     Ingest a telemetry message
// @Description Upserts the sender identity (last-write-wins) and appends an
// @Description immutable message row in one transaction.
// @Tags        Ingestion
// @Accept      json
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer token"
// @Param       body           body    handlers.IngestRequest  true  "Telemetry payload"
//
// @Success     200  {object}  handlers.OKResponse     "Persisted"
// @Failure     400  {object}  handlers.ErrorResponse  "Missing required fields"
// @Failure     401  {object}  handlers.ErrorResponse  "Bad or missing token"
// @Failure     403  {object}  handlers.ErrorResponse  "Origin not allowlisted"
// @Failure     500  {object}  handlers.ErrorResponse  "Store failure"
// @Router      /ingest [post]
func (h *Handlers) Ingest(c *gin.Context) {
	ctx := c.Request.Context()

	// Origin allowlist before anything touches the body.
	if !middleware.IPAllowed(h.allowIPs, middleware.ClientAddr(c)) {
		fail(c, http.StatusForbidden, ErrCodeForbiddenIP, nil)
		return
	}

	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failMissingFields(c)
		return
	}
	if strings.TrimSpace(req.UserID) == "" ||
		strings.TrimSpace(req.Username) == "" ||
		strings.TrimSpace(req.Message) == "" {
		failMissingFields(c)
		return
	}

	_, err := h.ingestSvc.Ingest(ctx, req.UserID, req.Username, req.DisplayName, req.Message)
	switch {
	case err == nil:
		middleware.ObserveIngest(true)
	case errors.Is(err, services.ErrMissingFields), errors.Is(err, services.ErrTooLong):
		// Rejected before a transaction began; not a transaction outcome.
	default:
		middleware.ObserveIngest(false)
	}
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			failMissingFields(c)
		case errors.Is(err, services.ErrTooLong):
			fail(c, http.StatusBadRequest, "message_too_long", nil)
		default:
			// Store failure: the transaction has been rolled back. Log the
			// detail, keep the client body coarse.
			fail(c, http.StatusInternalServerError, ErrCodeServerError, err)
		}
		return
	}

	ok(c, http.StatusOK)
}

// failMissingFields writes the fixed 400 validation shape, including the full
// required-field list.
func failMissingFields(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error:    ErrCodeMissingFields,
		Required: requiredFields,
	})
}
