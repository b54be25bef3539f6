package services

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/pixel-loom/imagegen/internal/config"
	"github.com/pixel-loom/imagegen/internal/llm"
	"github.com/pixel-loom/imagegen/internal/models"
)

// geminiClient is the subset of llm.Client operations used by GenerationService.
type geminiClient interface {
	EnhancePrompt(ctx context.Context, title, description string) (string, error)
	GenerateImage(ctx context.Context, prompt string) (*llm.Image, error)
}

// GenerationService chains the two Gemini calls: prompt enhancement, then
// image generation with the enhanced prompt as input. Each request gets a
// fresh client bound to the caller's API key.
type GenerationService struct {
	cfg       *config.Config
	newClient func(ctx context.Context, apiKey string) (geminiClient, error)
}

// NewGenerationService creates a new generation service
func NewGenerationService(cfg *config.Config) *GenerationService {
	return &GenerationService{
		cfg: cfg,
		newClient: func(ctx context.Context, apiKey string) (geminiClient, error) {
			return llm.NewClient(ctx, apiKey, llm.Options{
				Endpoint:    cfg.GeminiAPIEndpoint,
				ModelText:   cfg.GeminiModelText,
				ModelImage:  cfg.GeminiModelImage,
				AspectRatio: cfg.ImageAspectRatio,
				ImageSize:   cfg.ImageSize,
			})
		},
	}
}

// Generate runs the two-step pipeline. The request must already be
// validated; any upstream failure fails the whole request, no retries.
func (s *GenerationService) Generate(ctx context.Context, apiKey string, req *models.GenerateRequest) (*models.GenerateResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.GenerateTimeout)
	defer cancel()

	client, err := s.newClient(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	enhanced, err := client.EnhancePrompt(ctx, req.Title, req.Description)
	if err != nil {
		return nil, fmt.Errorf("enhance prompt: %w", err)
	}

	image, err := client.GenerateImage(ctx, enhanced)
	if err != nil {
		return nil, fmt.Errorf("generate image: %w", err)
	}

	log.Info().
		Int("enhanced_prompt_length", len(enhanced)).
		Int64("image_size_bytes", int64(len(image.Data))).
		Str("mime_type", image.MimeType).
		Msg("Generation pipeline complete")

	return &models.GenerateResponse{
		EnhancedPrompt: enhanced,
		ImageBase64:    base64.StdEncoding.EncodeToString(image.Data),
	}, nil
}
