// Mergington High School Activities API.
//
// @title Mergington High School Activities API
// @version 1.0
// @description API for viewing extracurricular activities and signing students up for them.
// @BasePath /
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mergington-activities/config"
	_ "mergington-activities/docs"
	emailadapter "mergington-activities/internal/adapters/email"
	delivery "mergington-activities/internal/delivery/http"
	"mergington-activities/internal/delivery/http/controllers"
	"mergington-activities/internal/delivery/http/middleware"
	"mergington-activities/internal/registry"
	"mergington-activities/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment)

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	}, logger)
	if err != nil {
		log.Fatalf("failed to create mailer: %v", err)
	}

	activityRegistry := registry.NewSeededRegistry()
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())
	activityService := services.NewActivityService(activityRegistry, emailService, logger)
	activityController := controllers.NewActivityController(logger, activityService)

	mux := delivery.NewRouter(activityController, cfg.StaticDir)
	handler := middleware.RequestID(
		middleware.Logging(logger,
			middleware.CORS(cfg.AllowedOrigins, mux)))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("activities API listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
