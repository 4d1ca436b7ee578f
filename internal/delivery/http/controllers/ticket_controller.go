package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "eventease/internal/delivery/http/helpers"
	"eventease/internal/domain"
)

type TicketController struct {
	Logger  *slog.Logger
	Service domain.TicketService
}

func NewTicketController(logger *slog.Logger, svc domain.TicketService) *TicketController {
	return &TicketController{
		Logger:  logger,
		Service: svc,
	}
}

// Get godoc
// @Summary Look up a ticket by code
// @Description Resolves a ticket code to its registration. Used by organizers to verify tickets at the door.
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param code path string true "Ticket code (UUID)"
// @Success 200 {object} domain.Ticket
// @Failure 404 {object} helpers.APIError "type: NotFound"
// @Router /tickets/{code} [get]
func (c *TicketController) Get(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if !uuidRegex.MatchString(code) {
		h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "ticket not found")
		return
	}
	ticket, err := c.Service.GetByCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "ticket not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.TypeInternalError, "an unexpected error occurred")
		return
	}
	h.WriteJSON(w, http.StatusOK, ticket)
}

// QR godoc
// @Summary Download a ticket's QR code
// @Description Serves the PNG image generated when the ticket was issued.
// @Tags tickets
// @Produce png
// @Param code path string true "Ticket code (UUID)"
// @Success 200 {file} file "PNG image"
// @Failure 404 {object} helpers.APIError "type: NotFound"
// @Router /tickets/{code}/qr [get]
func (c *TicketController) QR(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	if !uuidRegex.MatchString(code) {
		h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "ticket not found")
		return
	}
	path, err := c.Service.ArtifactPath(r.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "ticket not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.TypeInternalError, "an unexpected error occurred")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, path)
}
