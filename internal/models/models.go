package models

import (
	"fmt"
	"strings"
)

// GenerateRequest is the body of POST /generate
type GenerateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate checks required fields are present and non-blank
func (r *GenerateRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("description is required")
	}
	return nil
}

// GenerateResponse is the body of a successful POST /generate
type GenerateResponse struct {
	EnhancedPrompt string `json:"enhanced_prompt"`
	ImageBase64    string `json:"image_base64"`
}

// HealthResponse is the body of GET /
type HealthResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
