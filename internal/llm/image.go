package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	unifiedgenai "google.golang.org/genai"
)

// GenerateImage generates an image from a prompt with strict IMAGE modality.
// The response is streamed; the first inline image blob wins.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (*Image, error) {
	log.Debug().
		Str("model", c.modelImage).
		Str("prompt_preview", prompt[:min(80, len(prompt))]).
		Msg("Generating image")

	contents := []*unifiedgenai.Content{
		{
			Role: "user",
			Parts: []*unifiedgenai.Part{
				unifiedgenai.NewPartFromText(prompt),
			},
		},
	}

	config := &unifiedgenai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
		ImageConfig: &unifiedgenai.ImageConfig{
			AspectRatio: c.aspectRatio,
			ImageSize:   c.imageSize,
		},
	}

	var imageBytes []byte
	var mimeType string

	for resp, err := range c.genaiClient.Models.GenerateContentStream(ctx, c.modelImage, contents, config) {
		if err != nil {
			return nil, fmt.Errorf("image stream error: %w", err)
		}
		if len(resp.Candidates) == 0 {
			continue
		}
		cand := resp.Candidates[0]
		if cand.Content == nil || cand.Content.Parts == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				imageBytes = part.InlineData.Data
				mimeType = part.InlineData.MIMEType
				break
			}
		}
		if imageBytes != nil {
			break
		}
	}

	if len(imageBytes) == 0 {
		log.Warn().
			Str("model", c.modelImage).
			Msg("No image blob in Gemini response")
		return nil, fmt.Errorf("the model did not return an image data")
	}

	if mimeType == "" {
		mimeType = "image/png"
	}

	log.Info().
		Str("caller", "GenerateImage").
		Int64("image_size_bytes", int64(len(imageBytes))).
		Str("mime_type", mimeType).
		Msg("Gemini response (image blob)")

	return &Image{
		Data:     imageBytes,
		MimeType: mimeType,
		Model:    c.modelImage,
	}, nil
}
