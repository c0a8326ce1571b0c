package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "pulsefit/docs"

	"pulsefit/internal/config"
	"pulsefit/internal/contact"
	"pulsefit/internal/db"
	"pulsefit/internal/logger"
	"pulsefit/internal/server"
)

// @title PulseFit API
// @version 1.0
// @description API for gym class scheduling and bookings.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	logger.Init()
	logger.Info("Starting PulseFit application")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The relay runs only when a staff inbox is configured. Without one the
	// contact form still works, submissions just stay in the logs.
	var relay *contact.Relay
	if cfg.ContactInbox != "" {
		relay = contact.NewRelay(
			cfg.ContactInbox,
			cfg.ContactFrom,
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPass,
			cfg.RedisAddr,
		)
		defer relay.Close()
		go relay.Start(ctx)
		logger.Info("Contact relay initialized", "inbox", cfg.ContactInbox)
	}

	srv := server.New(database, cfg, relay)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
