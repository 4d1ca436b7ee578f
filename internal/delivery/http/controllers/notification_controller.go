package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "eventease/internal/delivery/http/helpers"
	"eventease/internal/delivery/http/middleware"
	"eventease/internal/domain"
)

// NotificationListResponse is the paginated response body for GET /notifications.
type NotificationListResponse struct {
	Notifications []*domain.Notification `json:"notifications"`
	Pagination    h.PaginationMeta       `json:"pagination"`
}

// UnreadCountResponse is the response body for GET /notifications/count.
type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}

// MarkAllReadResponse is the response body for PATCH /notifications/read-all.
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// BroadcastRequest is the request body for POST /notifications/broadcast.
type BroadcastRequest struct {
	Title   string  `json:"title"`
	Message string  `json:"message"`
	EventID *string `json:"event_id"`
}

// Validate implements helpers.Validator.
func (b BroadcastRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(b.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(b.Message) == "" {
		errs = append(errs, "message is required")
	}
	if b.EventID != nil && !uuidRegex.MatchString(*b.EventID) {
		errs = append(errs, "event_id must be a valid UUID")
	}
	return errs
}

// BroadcastResponse is the response body for POST /notifications/broadcast.
type BroadcastResponse struct {
	Delivered int `json:"delivered"`
}

type NotificationController struct {
	Logger  *slog.Logger
	Service domain.NotificationService
}

func NewNotificationController(logger *slog.Logger, svc domain.NotificationService) *NotificationController {
	return &NotificationController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List the current user's notifications
// @Description Newest first. Pass unread_only=true to restrict to unread notifications.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread_only query bool false "Only unread notifications"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} NotificationListResponse
// @Failure 401 {object} helpers.APIError "type: Unauthorized"
// @Router /notifications [get]
func (c *NotificationController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.TypeUnauthorized, "unauthorized")
		return
	}
	p := h.ParsePagination(r)
	unreadOnly := r.URL.Query().Get("unread_only") == "true"
	notifications, total, err := c.Service.ListNotifications(r.Context(), userID, unreadOnly, p)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.TypeInternalError, "an unexpected error occurred")
		return
	}
	h.WriteJSON(w, http.StatusOK, NotificationListResponse{
		Notifications: notifications,
		Pagination:    h.NewPaginationMeta(p.Page, p.PageSize, total),
	})
}

// UnreadCount godoc
// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UnreadCountResponse
// @Failure 401 {object} helpers.APIError "type: Unauthorized"
// @Router /notifications/count [get]
func (c *NotificationController) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.TypeUnauthorized, "unauthorized")
		return
	}
	count, err := c.Service.UnreadCount(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.TypeInternalError, "an unexpected error occurred")
		return
	}
	h.WriteJSON(w, http.StatusOK, UnreadCountResponse{UnreadCount: count})
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Description Only the notification's recipient may mark it; anyone else sees 404.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param notificationID path string true "Notification ID (UUID)"
// @Success 200 {object} domain.Notification
// @Failure 404 {object} helpers.APIError "type: NotFound"
// @Router /notifications/{notificationID}/read [patch]
func (c *NotificationController) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.TypeUnauthorized, "unauthorized")
		return
	}
	notificationID := r.PathValue("notificationID")
	if !uuidRegex.MatchString(notificationID) {
		h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "notification not found")
		return
	}
	n, err := c.Service.MarkRead(r.Context(), notificationID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "notification not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.TypeInternalError, "an unexpected error occurred")
		return
	}
	h.WriteJSON(w, http.StatusOK, n)
}

// MarkAllRead godoc
// @Summary Mark all notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MarkAllReadResponse
// @Failure 401 {object} helpers.APIError "type: Unauthorized"
// @Router /notifications/read-all [patch]
func (c *NotificationController) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.TypeUnauthorized, "unauthorized")
		return
	}
	updated, err := c.Service.MarkAllRead(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.TypeInternalError, "an unexpected error occurred")
		return
	}
	h.WriteJSON(w, http.StatusOK, MarkAllReadResponse{Updated: updated})
}

// Broadcast godoc
// @Summary Broadcast a notification to all users
// @Description Admin only. Creates one notification per user.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BroadcastRequest true "Broadcast data"
// @Success 200 {object} BroadcastResponse
// @Failure 403 {object} helpers.APIError "type: Forbidden"
// @Failure 422 {object} helpers.APIError "type: ValidationError"
// @Router /notifications/broadcast [post]
func (c *NotificationController) Broadcast(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.TypeUnauthorized, "unauthorized")
		return
	}
	var req BroadcastRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	delivered, err := c.Service.Broadcast(r.Context(), userID, req.Title, req.Message, req.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			h.WriteJSONError(w, http.StatusForbidden, h.TypeForbidden, "admin access required")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.TypeInternalError, "an unexpected error occurred")
		return
	}
	h.WriteJSON(w, http.StatusOK, BroadcastResponse{Delivered: len(delivered)})
}
