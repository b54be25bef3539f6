package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"github.com/pixel-loom/imagegen/internal/config"
	"github.com/pixel-loom/imagegen/internal/llm"
	"github.com/pixel-loom/imagegen/internal/models"
)

// fakeClient is a minimal geminiClient for tests.
type fakeClient struct {
	enhance  func(context.Context, string, string) (string, error)
	generate func(context.Context, string) (*llm.Image, error)
}

func (f *fakeClient) EnhancePrompt(ctx context.Context, title, description string) (string, error) {
	if f.enhance != nil {
		return f.enhance(ctx, title, description)
	}
	return "enhanced", nil
}

func (f *fakeClient) GenerateImage(ctx context.Context, prompt string) (*llm.Image, error) {
	if f.generate != nil {
		return f.generate(ctx, prompt)
	}
	return &llm.Image{Data: []byte("img"), MimeType: "image/png"}, nil
}

func testConfig() *config.Config {
	return &config.Config{GenerateTimeout: 5 * time.Second}
}

// TestGenerate_ChainsCalls asserts the enhanced prompt feeds the image call and the result is base64 encoded.
func TestGenerate_ChainsCalls(t *testing.T) {
	imageBytes := []byte("fake-image-bytes")
	var imagePrompt string

	svc := NewGenerationService(testConfig())
	svc.newClient = func(ctx context.Context, apiKey string) (geminiClient, error) {
		if apiKey != "caller-key" {
			t.Errorf("api key %q != caller-key", apiKey)
		}
		return &fakeClient{
			enhance: func(ctx context.Context, title, description string) (string, error) {
				if title != "A flying car" || description != "Neon city at night" {
					t.Errorf("unexpected inputs: %q / %q", title, description)
				}
				return "A cinematic masterpiece of a flying car", nil
			},
			generate: func(ctx context.Context, prompt string) (*llm.Image, error) {
				imagePrompt = prompt
				return &llm.Image{Data: imageBytes, MimeType: "image/png"}, nil
			},
		}, nil
	}

	resp, err := svc.Generate(context.Background(), "caller-key", &models.GenerateRequest{
		Title:       "A flying car",
		Description: "Neon city at night",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if imagePrompt != "A cinematic masterpiece of a flying car" {
		t.Errorf("image call did not receive the enhanced prompt: %q", imagePrompt)
	}
	if resp.EnhancedPrompt != "A cinematic masterpiece of a flying car" {
		t.Errorf("enhanced_prompt %q", resp.EnhancedPrompt)
	}
	if resp.ImageBase64 != base64.StdEncoding.EncodeToString(imageBytes) {
		t.Errorf("image_base64 %q is not std base64 of the image bytes", resp.ImageBase64)
	}
}

// TestGenerate_EnhanceFailure asserts the pipeline fails without an image call.
func TestGenerate_EnhanceFailure(t *testing.T) {
	imageCalls := 0

	svc := NewGenerationService(testConfig())
	svc.newClient = func(ctx context.Context, apiKey string) (geminiClient, error) {
		return &fakeClient{
			enhance: func(context.Context, string, string) (string, error) {
				return "", fmt.Errorf("quota exceeded")
			},
			generate: func(context.Context, string) (*llm.Image, error) {
				imageCalls++
				return nil, nil
			},
		}, nil
	}

	_, err := svc.Generate(context.Background(), "k", &models.GenerateRequest{Title: "t", Description: "d"})
	if err == nil {
		t.Fatal("expected error")
	}
	if imageCalls != 0 {
		t.Errorf("image call should not run after enhancement failure, got %d calls", imageCalls)
	}
}

// TestGenerate_ImageFailure asserts an image call failure fails the whole request.
func TestGenerate_ImageFailure(t *testing.T) {
	svc := NewGenerationService(testConfig())
	svc.newClient = func(ctx context.Context, apiKey string) (geminiClient, error) {
		return &fakeClient{
			generate: func(context.Context, string) (*llm.Image, error) {
				return nil, fmt.Errorf("the model did not return an image data")
			},
		}, nil
	}

	_, err := svc.Generate(context.Background(), "k", &models.GenerateRequest{Title: "t", Description: "d"})
	if err == nil {
		t.Fatal("expected error")
	}
}

// TestGenerate_ClientFailure asserts a client construction failure surfaces.
func TestGenerate_ClientFailure(t *testing.T) {
	svc := NewGenerationService(testConfig())
	svc.newClient = func(ctx context.Context, apiKey string) (geminiClient, error) {
		return nil, fmt.Errorf("bad key")
	}

	_, err := svc.Generate(context.Background(), "k", &models.GenerateRequest{Title: "t", Description: "d"})
	if err == nil {
		t.Fatal("expected error")
	}
}
