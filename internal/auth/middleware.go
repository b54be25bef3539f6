package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// HeaderAPIKey is the request header carrying the caller's Gemini API key.
const HeaderAPIKey = "x-gemini-api-key"

// ContextKey is the type for context keys
type ContextKey string

// APIKeyKey is the context key for the caller's Gemini API key
const APIKeyKey ContextKey = "gemini_api_key"

// Middleware requires the x-gemini-api-key header and stores the key in the
// request context. The key is forwarded to Gemini verbatim, never persisted.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := strings.TrimSpace(r.Header.Get(HeaderAPIKey))
		if apiKey == "" {
			log.Debug().Str("path", r.URL.Path).Msg("Missing API key header")
			writeJSONError(w, http.StatusUnauthorized, "missing "+HeaderAPIKey+" header")
			return
		}

		ctx := context.WithValue(r.Context(), APIKeyKey, apiKey)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAPIKey retrieves the caller's Gemini API key from context
func GetAPIKey(ctx context.Context) (string, error) {
	apiKey, ok := ctx.Value(APIKeyKey).(string)
	if !ok || apiKey == "" {
		return "", fmt.Errorf("api key not found in context")
	}
	return apiKey, nil
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
