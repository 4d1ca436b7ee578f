package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	h "eventease/internal/delivery/http/helpers"
	"eventease/internal/delivery/http/middleware"
	"eventease/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// uuidRegex matches a canonical UUID string (8-4-4-4-12 hex).
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// RegisterRequest is the request body for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // optional: "attendee" or "organizer" (defaults to "attendee")
}

// Validate implements helpers.Validator.
func (s RegisterRequest) Validate() []string {
	var errs []string
	if len(strings.TrimSpace(s.Name)) < 2 {
		errs = append(errs, "name must be at least 2 characters")
	}
	email := strings.TrimSpace(strings.ToLower(s.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	if s.Password == "" {
		errs = append(errs, "password is required")
	} else {
		if len(s.Password) < 8 {
			errs = append(errs, "password must be at least 8 characters")
		}
		var hasUpper, hasLower, hasDigit bool
		for _, c := range s.Password {
			switch {
			case c >= 'A' && c <= 'Z':
				hasUpper = true
			case c >= 'a' && c <= 'z':
				hasLower = true
			case c >= '0' && c <= '9':
				hasDigit = true
			}
		}
		if !hasUpper || !hasLower || !hasDigit {
			errs = append(errs, "password must contain uppercase, lowercase, and a digit")
		}
	}
	role := strings.TrimSpace(strings.ToLower(s.Role))
	if role != "" && role != domain.RoleAttendee && role != domain.RoleOrganizer {
		errs = append(errs, "role must be \"attendee\" or \"organizer\"")
	}
	return errs
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements helpers.Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(strings.TrimSpace(strings.ToLower(l.Email))) {
		errs = append(errs, "invalid email format")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the response body for POST /auth/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a new user with name, email, and password. Optional role: "attendee" or "organizer" (defaults to "attendee"). Admin is never self-assignable.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} domain.User
// @Failure 409 {object} helpers.APIError "type: Conflict (email already registered)"
// @Failure 422 {object} helpers.APIError "type: ValidationError"
// @Failure 500 {object} helpers.APIError "type: InternalServerError"
// @Router /auth/register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.SignUp(r.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			h.WriteJSONError(w, http.StatusConflict, h.TypeConflict, "user with this email already exists")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusUnprocessableEntity, h.TypeValidationError, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.TypeInternalError, "an unexpected error occurred")
		return
	}
	h.WriteJSON(w, http.StatusCreated, user)
}

// Login godoc
// @Summary Log in with email and password
// @Description Returns a bearer token on success. Unknown email and wrong password are indistinguishable.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} helpers.APIError "type: Unauthorized"
// @Failure 422 {object} helpers.APIError "type: ValidationError"
// @Failure 500 {object} helpers.APIError "type: InternalServerError"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.TypeUnauthorized, "Invalid credentials")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.TypeInternalError, "an unexpected error occurred")
		return
	}
	h.WriteJSON(w, http.StatusOK, LoginResponse{AccessToken: token, TokenType: "bearer"})
}

// Me godoc
// @Summary Get the current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} helpers.APIError "type: Unauthorized"
// @Router /auth/me [get]
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.TypeUnauthorized, "unauthorized")
		return
	}
	user, err := c.Service.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.TypeNotFound, "user not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.TypeInternalError, "an unexpected error occurred")
		return
	}
	h.WriteJSON(w, http.StatusOK, user)
}
