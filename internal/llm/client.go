package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	unifiedgenai "google.golang.org/genai"
)

// maxGeminiResponseLogBytes is the max length of a Gemini response body to log in full (to avoid huge logs).
const maxGeminiResponseLogBytes = 8192

// Options configures a Client. Zero-value fields fall back to defaults.
type Options struct {
	Endpoint    string // optional Gemini API base URL override; all Gemini traffic is rewritten to it
	ModelText   string // prompt enhancement model
	ModelImage  string // image generation model
	AspectRatio string // image aspect ratio, e.g. 1:1
	ImageSize   string // image size, e.g. 1K
}

// Client wraps the Gemini API for one caller-supplied API key.
// The service builds a fresh Client per request; the key is never stored
// anywhere beyond this value.
type Client struct {
	modelText   string
	modelImage  string
	aspectRatio string
	imageSize   string
	llmText     llms.Model           // enhancement call
	genaiClient *unifiedgenai.Client // image modality call
}

// Image is a generated image
type Image struct {
	Data     []byte
	MimeType string // e.g. "image/png" (from Gemini blob MIMEType)
	Model    string
}

// NewClient creates a Gemini client bound to the given API key.
func NewClient(ctx context.Context, apiKey string, opts Options) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if opts.ModelText == "" {
		opts.ModelText = "gemini-2.5-flash"
	}
	if opts.ModelImage == "" {
		opts.ModelImage = "gemini-3-pro-image-preview"
	}
	if opts.AspectRatio == "" {
		opts.AspectRatio = "1:1"
	}
	if opts.ImageSize == "" {
		opts.ImageSize = "1K"
	}

	// Optional custom HTTP client for langchaingo when using a custom endpoint
	var endpointHTTPClient *http.Client
	if opts.Endpoint != "" {
		endpointHTTPClient = httpClientForEndpoint(opts.Endpoint)
	}

	textOpts := []googleai.Option{googleai.WithAPIKey(apiKey), googleai.WithDefaultModel(opts.ModelText)}
	if endpointHTTPClient != nil {
		textOpts = append(textOpts, googleai.WithHTTPClient(endpointHTTPClient))
	}
	llmText, err := googleai.New(ctx, textOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialize text model: %w", err)
	}

	unifiedCfg := &unifiedgenai.ClientConfig{APIKey: apiKey}
	if opts.Endpoint != "" {
		unifiedCfg.HTTPOptions = unifiedgenai.HTTPOptions{BaseURL: opts.Endpoint}
	}
	genaiClient, err := unifiedgenai.NewClient(ctx, unifiedCfg)
	if err != nil {
		return nil, fmt.Errorf("initialize genai client: %w", err)
	}

	log.Debug().
		Str("model_text", opts.ModelText).
		Str("model_image", opts.ModelImage).
		Str("aspect_ratio", opts.AspectRatio).
		Str("image_size", opts.ImageSize).
		Str("api_endpoint", opts.Endpoint).
		Msg("LLM client initialized")

	return &Client{
		modelText:   opts.ModelText,
		modelImage:  opts.ModelImage,
		aspectRatio: opts.AspectRatio,
		imageSize:   opts.ImageSize,
		llmText:     llmText,
		genaiClient: genaiClient,
	}, nil
}

// httpClientForEndpoint returns an http.Client that rewrites request URLs to the given base endpoint (e.g. http://localhost:31300/gemini).
func httpClientForEndpoint(baseEndpoint string) *http.Client {
	base, err := url.Parse(baseEndpoint)
	if err != nil {
		log.Warn().Err(err).Str("endpoint", baseEndpoint).Msg("Invalid GEMINI_API_ENDPOINT, using default")
		return nil
	}
	base.Path = strings.TrimSuffix(base.Path, "/")
	return &http.Client{
		Transport: &endpointRoundTripper{base: base, next: http.DefaultTransport},
	}
}

// endpointRoundTripper rewrites request URLs to a custom base (scheme, host, path prefix).
type endpointRoundTripper struct {
	base *url.URL
	next http.RoundTripper
}

func (e *endpointRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	req2.URL.Scheme = e.base.Scheme
	req2.URL.Host = e.base.Host
	req2.URL.Path = path.Join(e.base.Path, strings.TrimPrefix(req.URL.Path, "/"))
	if req.URL.RawQuery != "" {
		req2.URL.RawQuery = req.URL.RawQuery
	}
	return e.next.RoundTrip(req2)
}

// logGeminiResponse logs Gemini response text, truncating if over maxGeminiResponseLogBytes.
func logGeminiResponse(caller, raw string) {
	if len(raw) <= maxGeminiResponseLogBytes {
		log.Info().Str("caller", caller).Str("gemini_response", raw).Msg("Gemini response")
		return
	}
	log.Info().
		Str("caller", caller).
		Str("gemini_response", raw[:maxGeminiResponseLogBytes]+"... [truncated]").
		Int("gemini_response_len", len(raw)).
		Msg("Gemini response")
}
