package main

import (
	"context"
	"fmt"
	"harborline_server/api"
	"harborline_server/config"
	"harborline_server/database"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.GetConfig()
	logger := config.InitializeLogger()

	if envErr != nil {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to open database", gecho.Field("error", err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.InitSchema(ctx, cfg); err != nil {
		cancel()
		logger.Fatal("Failed to initialize schema", gecho.Field("error", err))
	}
	cancel()

	srv := &http.Server{
		Addr:           cfg.Server.Port,
		Handler:        api.App(cfg, db),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	setupGracefulShutdown(logger, srv, db)

	logger.Info(fmt.Sprintf("Starting server (%s) on %s", cfg.Server.AppName, cfg.Server.Port))

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Failed to start server", gecho.Field("error", err))
	}
}

// setupGracefulShutdown drains in-flight requests and closes the
// database before the process exits.
func setupGracefulShutdown(logger *gecho.Logger, srv *http.Server, db *database.DB) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	logger.Info("Graceful shutdown handler initialized")

	go func() {
		sig := <-c
		logger.Info("Received shutdown signal", gecho.Field("signal", sig))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown failed", gecho.Field("error", err))
		}
		if err := db.Close(); err != nil {
			logger.Error("Database close failed", gecho.Field("error", err))
		}
		os.Exit(0)
	}()
}
