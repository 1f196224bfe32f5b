// Package main runs the expo attendance pass HTTP server.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"expopass/config"
	_ "expopass/docs"
	"expopass/internal/adapters/auth"
	"expopass/internal/adapters/email"
	deliveryhttp "expopass/internal/delivery/http"
	"expopass/internal/delivery/http/controllers"
	"expopass/internal/delivery/http/middleware"
	"expopass/internal/repository/postgres"
	"expopass/internal/services"
)

// @title           ExpoPass API
// @version         1.0
// @description     Event registration and QR-based attendance verification service.
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
// @securityDefinitions.apikey ScannerKey
// @in header
// @name X-Scanner-Key
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipTLS,
		},
	})
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}

	attendeeRepo := postgres.NewAttendeeRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	regRepo := postgres.NewRegistrationRepository(db)
	scanRepo := postgres.NewScanRepository(db)

	dispatcher := services.NewNotificationService(mailer, email.NewTemplateRenderer())
	registrationService := services.NewRegistrationService(
		logger, attendeeRepo, eventRepo, regRepo, services.NewTokenGenerator(), dispatcher)
	checkInService := services.NewCheckInService(logger, regRepo, eventRepo, scanRepo)

	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	scannerVerifier := auth.NewScannerKeyVerifier(cfg.ScannerKeyHash)

	mux := deliveryhttp.NewRouter(
		logger,
		verifier,
		scannerVerifier,
		controllers.NewRegistrationController(logger, registrationService),
		controllers.NewCheckInController(logger, checkInService),
		controllers.NewEventController(logger, eventRepo),
	)

	var handler http.Handler = middleware.LoggingMiddleware(logger, mux)
	if len(cfg.CORSAllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
