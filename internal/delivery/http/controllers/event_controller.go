package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "eventease/internal/delivery/http/helpers"
	"eventease/internal/delivery/http/middleware"
	"eventease/internal/domain"
)

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Date        string  `json:"date"` // RFC 3339
}

// Validate implements helpers.Validator.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if len(strings.TrimSpace(c.Title)) < 3 {
		errs = append(errs, "title must be at least 3 characters")
	}
	if c.Date == "" {
		errs = append(errs, "date is required")
	} else if _, err := time.Parse(time.RFC3339, c.Date); err != nil {
		errs = append(errs, "date must be a valid RFC 3339 timestamp")
	}
	return errs
}

// UpdateEventRequest is the request body for PUT /events/{eventID}.
// All fields are optional; only the fields present are changed.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"` // RFC 3339
}

// Validate implements helpers.Validator.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Title == nil && u.Description == nil && u.Date == nil {
		errs = append(errs, "at least one field must be provided")
	}
	if u.Title != nil && len(strings.TrimSpace(*u.Title)) < 3 {
		errs = append(errs, "title must be at least 3 characters")
	}
	if u.Date != nil {
		if _, err := time.Parse(time.RFC3339, *u.Date); err != nil {
			errs = append(errs, "date must be a valid RFC 3339 timestamp")
		}
	}
	return errs
}

// EventListResponse is the paginated response body for GET /events.
type EventListResponse struct {
	Events     []*domain.Event  `json:"events"`
	Pagination h.PaginationMeta `json:"pagination"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create an event
// @Description Only organizers and admins may create events. The event date must be in the future.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateEventRequest true "Event data"
// @Success 201 {object} domain.Event
// @Failure 401 {object} helpers.APIError "type: Unauthorized"
// @Failure 403 {object} helpers.APIError "type: Forbidden"
// @Failure 422 {object} helpers.APIError "type: ValidationError"
// @Router /events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.TypeUnauthorized, "unauthorized")
		return
	}
	var req CreateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	date, _ := time.Parse(time.RFC3339, req.Date)
	event, err := c.Service.CreateEvent(r.Context(), userID, req.Title, req.Description, date)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, event)
}

// List godoc
// @Summary List events
// @Description Paginated listing with optional search (title substring, case-insensitive) and date range filters.
// @Tags events
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Param search query string false "Title substring filter"
// @Param from query string false "Earliest event date (RFC 3339)"
// @Param to query string false "Latest event date (RFC 3339)"
// @Success 200 {object} EventListResponse
// @Failure 422 {object} helpers.APIError "type: ValidationError"
// @Router /events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	p := h.ParsePagination(r)
	var filter domain.EventFilter
	filter.Search = strings.TrimSpace(r.URL.Query().Get("search"))
	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.WriteJSONError(w, http.StatusUnprocessableEntity, h.TypeValidationError, "from must be a valid RFC 3339 timestamp")
			return
		}
		filter.From = &t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.WriteJSONError(w, http.StatusUnprocessableEntity, h.TypeValidationError, "to must be a valid RFC 3339 timestamp")
			return
		}
		filter.To = &t
	}
	events, total, err := c.Service.ListEvents(r.Context(), filter, p)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, EventListResponse{
		Events:     events,
		Pagination: h.NewPaginationMeta(p.Page, p.PageSize, total),
	})
}

// Get godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} domain.Event
// @Failure 404 {object} helpers.APIError "type: NotFound"
// @Router /events/{eventID} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if !uuidRegex.MatchString(eventID) {
		h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "event not found")
		return
	}
	event, err := c.Service.GetEvent(r.Context(), eventID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, event)
}

// Update godoc
// @Summary Update an event
// @Description Partial update. Only the event's organizer may update it; admins may not edit events they do not own.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body UpdateEventRequest true "Fields to change"
// @Success 200 {object} domain.Event
// @Failure 403 {object} helpers.APIError "type: Forbidden"
// @Failure 404 {object} helpers.APIError "type: NotFound"
// @Failure 422 {object} helpers.APIError "type: ValidationError"
// @Router /events/{eventID} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
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
	var req UpdateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	var date *time.Time
	if req.Date != nil {
		t, _ := time.Parse(time.RFC3339, *req.Date)
		date = &t
	}
	event, err := c.Service.UpdateEvent(r.Context(), userID, eventID, req.Title, req.Description, date)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Description Deletes the event together with its registrations, tickets, comments, and event-scoped notifications. Allowed for the event's organizer or an admin.
// @Tags events
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 204 "No Content"
// @Failure 403 {object} helpers.APIError "type: Forbidden"
// @Failure 404 {object} helpers.APIError "type: NotFound"
// @Router /events/{eventID} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := c.Service.DeleteEvent(r.Context(), userID, eventID); err != nil {
		c.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MyEvents godoc
// @Summary List events organized by the current user
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Event
// @Failure 401 {object} helpers.APIError "type: Unauthorized"
// @Router /events/my [get]
func (c *EventController) MyEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.TypeUnauthorized, "unauthorized")
		return
	}
	events, err := c.Service.ListMyEvents(r.Context(), userID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, events)
}

// Attendees godoc
// @Summary List an event's attendees
// @Description Returns the registered users with their ticket codes. Allowed for the event's organizer or an admin.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {array} domain.Attendee
// @Failure 403 {object} helpers.APIError "type: Forbidden"
// @Failure 404 {object} helpers.APIError "type: NotFound"
// @Router /events/{eventID}/attendees [get]
func (c *EventController) Attendees(w http.ResponseWriter, r *http.Request) {
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
	attendees, err := c.Service.ListAttendees(r.Context(), userID, eventID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, attendees)
}

func (c *EventController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "event not found")
	case errors.Is(err, domain.ErrForbidden):
		h.WriteJSONError(w, http.StatusForbidden, h.TypeForbidden, "you do not have permission to perform this action")
	case errors.Is(err, domain.ErrInvalidInput):
		h.WriteJSONError(w, http.StatusUnprocessableEntity, h.TypeValidationError, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.TypeInternalError, "an unexpected error occurred")
	}
}
