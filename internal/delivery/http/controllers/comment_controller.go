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

// CreateCommentRequest is the request body for POST /events/{eventID}/comments.
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// Validate implements helpers.Validator.
func (c CreateCommentRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Content) == "" {
		errs = append(errs, "content is required")
	} else if len(c.Content) > 1000 {
		errs = append(errs, "content must be at most 1000 characters")
	}
	return errs
}

// CommentListResponse is the paginated response body for GET /events/{eventID}/comments.
type CommentListResponse struct {
	Comments   []*domain.Comment `json:"comments"`
	Pagination h.PaginationMeta  `json:"pagination"`
}

type CommentController struct {
	Logger  *slog.Logger
	Service domain.CommentService
}

func NewCommentController(logger *slog.Logger, svc domain.CommentService) *CommentController {
	return &CommentController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Comment on an event
// @Description Any authenticated user may comment. The event's organizer is notified.
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body CreateCommentRequest true "Comment data"
// @Success 201 {object} domain.Comment
// @Failure 404 {object} helpers.APIError "type: NotFound"
// @Failure 422 {object} helpers.APIError "type: ValidationError"
// @Router /events/{eventID}/comments [post]
func (c *CommentController) Create(w http.ResponseWriter, r *http.Request) {
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
	var req CreateCommentRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	comment, err := c.Service.CreateComment(r.Context(), userID, eventID, req.Content)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, comment)
}

// List godoc
// @Summary List an event's comments
// @Tags comments
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} CommentListResponse
// @Failure 404 {object} helpers.APIError "type: NotFound"
// @Router /events/{eventID}/comments [get]
func (c *CommentController) List(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if !uuidRegex.MatchString(eventID) {
		h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "event not found")
		return
	}
	p := h.ParsePagination(r)
	comments, total, err := c.Service.ListComments(r.Context(), eventID, p)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, CommentListResponse{
		Comments:   comments,
		Pagination: h.NewPaginationMeta(p.Page, p.PageSize, total),
	})
}

// Delete godoc
// @Summary Delete a comment
// @Description Allowed for the comment's author or an admin.
// @Tags comments
// @Security BearerAuth
// @Param commentID path string true "Comment ID (UUID)"
// @Success 204 "No Content"
// @Failure 403 {object} helpers.APIError "type: Forbidden"
// @Failure 404 {object} helpers.APIError "type: NotFound"
// @Router /comments/{commentID} [delete]
func (c *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.TypeUnauthorized, "unauthorized")
		return
	}
	commentID := r.PathValue("commentID")
	if !uuidRegex.MatchString(commentID) {
		h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "comment not found")
		return
	}
	if err := c.Service.DeleteComment(r.Context(), userID, commentID); err != nil {
		c.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *CommentController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "not found")
	case errors.Is(err, domain.ErrForbidden):
		h.WriteJSONError(w, http.StatusForbidden, h.TypeForbidden, "you do not have permission to perform this action")
	case errors.Is(err, domain.ErrInvalidInput):
		h.WriteJSONError(w, http.StatusUnprocessableEntity, h.TypeValidationError, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.TypeInternalError, "an unexpected error occurred")
	}
}
