package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "eventease/internal/delivery/http/helpers"
	"eventease/internal/delivery/http/middleware"
	"eventease/internal/domain"
)

// RegisterResponse is the response body for POST /events/{eventID}/register.
type RegisterResponse struct {
	Message    string `json:"message"`
	TicketCode string `json:"ticket_code"`
	TicketURL  string `json:"ticket_url"`
}

// CancelResponse is the response body for DELETE /events/{eventID}/register.
type CancelResponse struct {
	Message string `json:"message"`
}

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register for an event
// @Description Registers the current user, issues a ticket with a QR code, and notifies the registrant and the organizer. Registration, ticket, and QR artifact are created atomically.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} RegisterResponse
// @Failure 404 {object} helpers.APIError "type: NotFound"
// @Failure 409 {object} helpers.APIError "type: Conflict (already registered)"
// @Failure 500 {object} helpers.APIError "type: ArtifactWriteError"
// @Router /events/{eventID}/register [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.TypeUnauthorized, "unauthorized")
		return
	}
	eventID := r.PathValue("eventID")
	if !uuidRegex.MatchString(eventID) {
		h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "event not found")
		return
	}
	result, err := c.Service.Register(r.Context(), userID, eventID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "event not found")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			h.WriteJSONError(w, http.StatusConflict, h.TypeConflict, "you are already registered for this event")
		case errors.Is(err, domain.ErrArtifactWrite):
			c.Logger.ErrorContext(r.Context(), "ticket artifact write failed", "event_id", eventID, "user_id", userID, "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, h.TypeArtifactWrite, "could not generate the ticket, please try again")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, h.TypeInternalError, "an unexpected error occurred")
		}
		return
	}
	h.WriteJSON(w, http.StatusOK, RegisterResponse{
		Message:    "registration confirmed",
		TicketCode: result.Ticket.Code,
		TicketURL:  "/tickets/" + result.Ticket.Code + "/qr",
	})
}

// Cancel godoc
// @Summary Cancel a registration
// @Description Removes the current user's registration and its ticket, and notifies the organizer.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} CancelResponse
// @Failure 404 {object} helpers.APIError "type: NotFound (not registered)"
// @Router /events/{eventID}/register [delete]
func (c *RegistrationController) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.TypeUnauthorized, "unauthorized")
		return
	}
	eventID := r.PathValue("eventID")
	if !uuidRegex.MatchString(eventID) {
		h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "registration not found")
		return
	}
	if _, err := c.Service.Cancel(r.Context(), userID, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "registration not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.TypeInternalError, "an unexpected error occurred")
		return
	}
	h.WriteJSON(w, http.StatusOK, CancelResponse{Message: "registration cancelled"})
}

// Mine godoc
// @Summary List the current user's registrations
// @Description Returns registrations with their event details and ticket codes. Registrations whose event has since been removed are omitted.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.RegistrationWithEvent
// @Failure 401 {object} helpers.APIError "type: Unauthorized"
// @Router /registrations/mine [get]
func (c *RegistrationController) Mine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.TypeUnauthorized, "unauthorized")
		return
	}
	regs, err := c.Service.ListMyRegistrations(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.TypeInternalError, "an unexpected error occurred")
		return
	}
	h.WriteJSON(w, http.StatusOK, regs)
}
