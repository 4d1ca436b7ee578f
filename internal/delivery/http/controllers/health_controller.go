package controllers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	h "eventease/internal/delivery/http/helpers"
)

type HealthController struct {
	Logger *slog.Logger
	DB     *sql.DB
}

func NewHealthController(logger *slog.Logger, db *sql.DB) *HealthController {
	return &HealthController{
		Logger: logger,
		DB:     db,
	}
}

// Health godoc
// @Summary Health check
// @Description Returns 200 when the service and its database are reachable.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} helpers.APIError
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := c.DB.PingContext(ctx); err != nil {
		c.Logger.ErrorContext(r.Context(), "database unreachable", "err", err)
		h.WriteJSONError(w, http.StatusServiceUnavailable, h.TypeInternalError, "database unreachable")
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
