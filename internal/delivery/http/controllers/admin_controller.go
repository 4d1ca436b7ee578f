package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "eventease/internal/delivery/http/helpers"
	"eventease/internal/delivery/http/middleware"
	"eventease/internal/domain"
)

// ChangeRoleRequest is the request body for PUT /admin/users/{userID}/role.
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// Validate implements helpers.Validator.
func (c ChangeRoleRequest) Validate() []string {
	if !domain.ValidRole(c.Role) {
		return []string{"role must be one of: attendee, organizer, admin"}
	}
	return nil
}

type AdminController struct {
	Logger  *slog.Logger
	Service domain.UserAdminService
	Events  domain.EventService
}

func NewAdminController(logger *slog.Logger, svc domain.UserAdminService, events domain.EventService) *AdminController {
	return &AdminController{
		Logger:  logger,
		Service: svc,
		Events:  events,
	}
}

// ListUsers godoc
// @Summary List all users
// @Description Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.User
// @Failure 403 {object} helpers.APIError "type: Forbidden"
// @Router /admin/users [get]
func (c *AdminController) ListUsers(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.TypeUnauthorized, "unauthorized")
		return
	}
	users, err := c.Service.ListUsers(r.Context(), actorID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, users)
}

// ChangeRole godoc
// @Summary Change a user's role
// @Description Admin only. Any of "attendee", "organizer", "admin" may be assigned.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User ID (UUID)"
// @Param body body ChangeRoleRequest true "New role"
// @Success 200 {object} domain.User
// @Failure 403 {object} helpers.APIError "type: Forbidden"
// @Failure 404 {object} helpers.APIError "type: NotFound"
// @Failure 422 {object} helpers.APIError "type: ValidationError"
// @Router /admin/users/{userID}/role [put]
func (c *AdminController) ChangeRole(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.TypeUnauthorized, "unauthorized")
		return
	}
	userID := r.PathValue("userID")
	if !uuidRegex.MatchString(userID) {
		h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "user not found")
		return
	}
	var req ChangeRoleRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.ChangeRole(r.Context(), actorID, userID, req.Role)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Admin only. Removes the user together with their registrations, tickets, comments, notifications, and any events they organized. Admins cannot delete themselves.
// @Tags admin
// @Security BearerAuth
// @Param userID path string true "User ID (UUID)"
// @Success 204 "No Content"
// @Failure 403 {object} helpers.APIError "type: Forbidden"
// @Failure 404 {object} helpers.APIError "type: NotFound"
// @Failure 422 {object} helpers.APIError "type: ValidationError"
// @Router /admin/users/{userID} [delete]
func (c *AdminController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.TypeUnauthorized, "unauthorized")
		return
	}
	userID := r.PathValue("userID")
	if !uuidRegex.MatchString(userID) {
		h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "user not found")
		return
	}
	if err := c.Service.DeleteUser(r.Context(), actorID, userID); err != nil {
		c.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteEvent godoc
// @Summary Delete any event
// @Description Admin only. Same cascade as the organizer's own delete: registrations, tickets, comments, and event-scoped notifications go with the event.
// @Tags admin
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 204 "No Content"
// @Failure 403 {object} helpers.APIError "type: Forbidden"
// @Failure 404 {object} helpers.APIError "type: NotFound"
// @Router /admin/events/{eventID} [delete]
func (c *AdminController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.TypeUnauthorized, "unauthorized")
		return
	}
	eventID := r.PathValue("eventID")
	if !uuidRegex.MatchString(eventID) {
		h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "event not found")
		return
	}
	if err := c.Events.DeleteEvent(r.Context(), actorID, eventID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "event not found")
		case errors.Is(err, domain.ErrForbidden):
			h.WriteJSONError(w, http.StatusForbidden, h.TypeForbidden, "admin access required")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, h.TypeInternalError, "an unexpected error occurred")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *AdminController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "user not found")
	case errors.Is(err, domain.ErrForbidden):
		h.WriteJSONError(w, http.StatusForbidden, h.TypeForbidden, "admin access required")
	case errors.Is(err, domain.ErrInvalidInput):
		h.WriteJSONError(w, http.StatusUnprocessableEntity, h.TypeValidationError, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.TypeInternalError, "an unexpected error occurred")
	}
}
