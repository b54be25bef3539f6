package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pixel-loom/imagegen/internal/auth"
	"github.com/pixel-loom/imagegen/internal/config"
	"github.com/pixel-loom/imagegen/internal/handlers"
	"github.com/pixel-loom/imagegen/internal/services"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded .env file")
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Info().Msg("Starting Image Generator API")

	cfg := config.Load()

	generationService := services.NewGenerationService(cfg)
	h := handlers.NewHandler(generationService)

	r := mux.NewRouter()
	r.Use(handlers.RequestID)
	r.HandleFunc("/", h.Index).Methods("GET")
	r.HandleFunc("/generation", h.GenerationPage).Methods("GET")
	r.Handle("/generate", auth.Middleware(http.HandlerFunc(h.Generate))).Methods("POST")

	srv := &http.Server{
		Addr:        cfg.HTTPAddr,
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Write timeout must outlast the two chained Gemini calls
		WriteTimeout: cfg.GenerateTimeout + 15*time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down API...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}
	log.Info().Msg("API exited")
}
