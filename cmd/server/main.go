package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/RMahshie/headphone-power/internal/api"
	"github.com/RMahshie/headphone-power/internal/calculator"
	"github.com/RMahshie/headphone-power/internal/config"
	"github.com/RMahshie/headphone-power/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info", "dev")
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Setup(cfg.Log.Level, cfg.Server.Env)
	log.Debug().
		Strs("allowed_origins", cfg.Server.AllowedOrigins).
		Float64("default_impedance", cfg.Defaults.Impedance).
		Msg("Configuration loaded")

	router, _ := api.NewRouter(cfg, calculator.NewService())

	// Start server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Server.Env).Msg("Starting Headphone Power API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
