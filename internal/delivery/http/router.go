package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventease/internal/delivery/http/controllers"
	"eventease/internal/delivery/http/middleware"
	"eventease/internal/domain"
)

// Controllers bundles the handlers the router wires up.
type Controllers struct {
	Auth         *controllers.AuthController
	Event        *controllers.EventController
	Registration *controllers.RegistrationController
	Ticket       *controllers.TicketController
	Comment      *controllers.CommentController
	Notification *controllers.NotificationController
	Admin        *controllers.AdminController
	Health       *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(c Controllers, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/register", c.Auth.Register)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("GET /auth/me", auth(c.Auth.Me))

	// Events
	mux.HandleFunc("GET /events", c.Event.List)
	mux.HandleFunc("POST /events", auth(c.Event.Create))
	mux.HandleFunc("GET /events/my", auth(c.Event.MyEvents))
	mux.HandleFunc("GET /events/{eventID}", c.Event.Get)
	mux.HandleFunc("PUT /events/{eventID}", auth(c.Event.Update))
	mux.HandleFunc("DELETE /events/{eventID}", auth(c.Event.Delete))
	mux.HandleFunc("GET /events/{eventID}/attendees", auth(c.Event.Attendees))

	// Registrations and tickets
	mux.HandleFunc("POST /events/{eventID}/register", auth(c.Registration.Register))
	mux.HandleFunc("DELETE /events/{eventID}/register", auth(c.Registration.Cancel))
	mux.HandleFunc("GET /registrations/mine", auth(c.Registration.Mine))
	mux.HandleFunc("GET /tickets/{code}", auth(c.Ticket.Get))
	mux.HandleFunc("GET /tickets/{code}/qr", c.Ticket.QR)

	// Comments
	mux.HandleFunc("GET /events/{eventID}/comments", c.Comment.List)
	mux.HandleFunc("POST /events/{eventID}/comments", auth(c.Comment.Create))
	mux.HandleFunc("DELETE /comments/{commentID}", auth(c.Comment.Delete))

	// Notifications
	mux.HandleFunc("GET /notifications", auth(c.Notification.List))
	mux.HandleFunc("GET /notifications/count", auth(c.Notification.UnreadCount))
	mux.HandleFunc("PATCH /notifications/{notificationID}/read", auth(c.Notification.MarkRead))
	mux.HandleFunc("PATCH /notifications/read-all", auth(c.Notification.MarkAllRead))
	mux.HandleFunc("POST /notifications/broadcast", auth(c.Notification.Broadcast))

	// Admin
	mux.HandleFunc("GET /admin/users", auth(c.Admin.ListUsers))
	mux.HandleFunc("PUT /admin/users/{userID}/role", auth(c.Admin.ChangeRole))
	mux.HandleFunc("DELETE /admin/users/{userID}", auth(c.Admin.DeleteUser))
	mux.HandleFunc("DELETE /admin/events/{eventID}", auth(c.Admin.DeleteEvent))

	// Health
	mux.HandleFunc("GET /health", c.Health.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
