package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/pixel-loom/imagegen/internal/auth"
	"github.com/pixel-loom/imagegen/internal/models"
)

// Generate handles POST /generate — enhances the prompt via the Gemini text
// model, then generates an image with the enhanced prompt.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	apiKey, err := auth.GetAPIKey(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	resp, err := h.generation.Generate(r.Context(), apiKey, &req)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Generation failed")
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
