// Health HTTP handler.
//
// GET /health is deliberately unauthenticated so external orchestration can
// probe liveness without holding the ingestion token.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-ingest-backend/internal/http/middleware"
	"github.com/tbourn/go-ingest-backend/internal/repo"
)

// Health godoc
// @ID          health
// @Summary     Liveness probe
// @Description Runs a trivial query against the store and reports reachability.
// @Tags        Health
// @Produce     json
//
// @Success     200  {object}  handlers.HealthResponse  "Store reachable"
// @Failure     500  {object}  handlers.HealthResponse  "Store unreachable"
// @Router      /health [get]
func (h *Handlers) Health(c *gin.Context) {
	if err := repo.Ping(c.Request.Context(), h.db); err != nil {
		lg := middleware.LoggerFrom(c)
		lg.Error().Err(err).Msg("health ping failed")
		c.JSON(http.StatusInternalServerError, HealthResponse{
			OK:    false,
			Error: ErrCodeDBUnreachable,
		})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{OK: true})
}
