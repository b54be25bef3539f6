package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/pixel-loom/imagegen/internal/models"
)

// generationService is the subset of service operations used by Handler.
type generationService interface {
	Generate(ctx context.Context, apiKey string, req *models.GenerateRequest) (*models.GenerateResponse, error)
}

// Handler contains all HTTP handlers
type Handler struct {
	generation generationService
}

// NewHandler creates a new handler
func NewHandler(generation generationService) *Handler {
	return &Handler{
		generation: generation,
	}
}

// Index handles GET / — liveness check
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Message: "Gemini Image Generator API is running!",
		Status:  "ok",
	})
}

// RequestID tags each request with an X-Request-ID (generated unless the
// caller supplied one) and binds it into the request-scoped logger.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)

		logger := log.With().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()
		ctx := logger.WithContext(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
