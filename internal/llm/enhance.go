package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
)

// enhanceTemplate is the fixed instruction for the enhancement call. The
// model's output is used verbatim as the image generation prompt.
const enhanceTemplate = `You are an expert AI Image Prompt Engineer.
Take the user's main subject and details and write a single highly detailed,
professional image generation prompt. Add deep descriptions of the lighting,
camera angle, mood, atmosphere, and artistic style.

Make it sound like a cinematic masterpiece or brilliant conceptual artwork.
Do NOT include introductory or concluding text, JUST output the enhanced image prompt.

Main Subject: '%s'
Details & Setting: '%s'`

// EnhancePrompt turns a title and description into a detailed image
// generation prompt using the Gemini text model.
func (c *Client) EnhancePrompt(ctx context.Context, title, description string) (string, error) {
	log.Debug().
		Str("model", c.modelText).
		Int("title_length", len(title)).
		Int("description_length", len(description)).
		Msg("Enhancing prompt")

	prompt := buildEnhancePrompt(title, description)

	response, err := llms.GenerateFromSinglePrompt(ctx, c.llmText, prompt)
	if err != nil {
		return "", fmt.Errorf("enhancement call failed: %w", err)
	}

	logGeminiResponse("EnhancePrompt", response)

	enhanced := strings.TrimSpace(response)
	if enhanced == "" {
		return "", fmt.Errorf("model returned empty enhanced prompt")
	}

	log.Info().
		Str("model", c.modelText).
		Int("prompt_length", len(enhanced)).
		Msg("Prompt enhancement complete")

	return enhanced, nil
}

func buildEnhancePrompt(title, description string) string {
	return fmt.Sprintf(enhanceTemplate, title, description)
}
