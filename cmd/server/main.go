package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"

	"eventease/config"
	_ "eventease/docs"
	"eventease/internal/adapters/auth"
	emailadapter "eventease/internal/adapters/email"
	"eventease/internal/adapters/qr"
	"eventease/internal/adapters/storage"
	delivery "eventease/internal/delivery/http"
	"eventease/internal/delivery/http/controllers"
	"eventease/internal/delivery/http/middleware"
	"eventease/internal/repository/postgres"
	"eventease/internal/services"
)

// @title EventEase API
// @version 1.0
// @description Event management backend: events, registrations, QR tickets, comments, and notifications.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	uow := postgres.NewRegistrationUnitOfWork(db)

	artifacts, err := storage.NewFileArtifactStore(cfg.TicketArtifactDir)
	if err != nil {
		logger.Error("failed to create ticket artifact store", "dir", cfg.TicketArtifactDir, "err", err)
		os.Exit(1)
	}

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.SES.Region,
			AccessKeyID:     cfg.SES.AccessKeyID,
			SecretAccessKey: cfg.SES.SecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "provider", cfg.EmailProvider, "err", err)
		os.Exit(1)
	}

	hasher := auth.NewBcryptHasher(0)
	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	authService := services.NewAuthService(userRepo, hasher, issuer, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	notificationService := services.NewNotificationService(notificationRepo, registrationRepo, userRepo, logger)
	eventService := services.NewEventService(eventRepo, userRepo, registrationRepo, notificationService, logger)
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())
	registrationService := services.NewRegistrationService(
		eventRepo, registrationRepo, ticketRepo, userRepo,
		uow, qr.NewRenderer(0), artifacts,
		notificationService, emailService, logger,
	)
	ticketService := services.NewTicketService(ticketRepo, artifacts)
	commentService := services.NewCommentService(commentRepo, eventRepo, userRepo, notificationService, logger)
	adminService := services.NewUserAdminService(userRepo)

	mux := delivery.NewRouter(delivery.Controllers{
		Auth:         controllers.NewAuthController(logger, authService),
		Event:        controllers.NewEventController(logger, eventService),
		Registration: controllers.NewRegistrationController(logger, registrationService),
		Ticket:       controllers.NewTicketController(logger, ticketService),
		Comment:      controllers.NewCommentController(logger, commentService),
		Notification: controllers.NewNotificationController(logger, notificationService),
		Admin:        controllers.NewAdminController(logger, adminService, eventService),
		Health:       controllers.NewHealthController(logger, db),
	}, verifier)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
