package insight

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

// ServiceError reports a failed call to the text model.
type ServiceError struct {
	Status int
	Err    error
}

func (e ServiceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("insight service: status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("insight service: %v", e.Err)
}

func (e ServiceError) Unwrap() error { return e.Err }

type Config struct {
	APIKey string
	Model  string
	// Endpoint overrides the Gemini API base URL.
	Endpoint string
}

// NewGenerator picks Gemini when a real key is configured and Mock otherwise.
func NewGenerator(ctx context.Context, cfg Config, client *http.Client) (Generator, error) {
	if cfg.APIKey == "" || cfg.APIKey == MockAPIKey {
		return Mock{Delay: 1500 * time.Millisecond}, nil
	}
	return NewGemini(ctx, cfg, client)
}

// Gemini calls generateContent through the genai client.
type Gemini struct {
	model  string
	client *genai.Client
}

func NewGemini(ctx context.Context, cfg Config, httpClient *http.Client) (*Gemini, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if cfg.Endpoint != "" {
		cc.HTTPOptions.BaseURL = cfg.Endpoint
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, ServiceError{Err: err}
	}
	return &Gemini{model: cfg.Model, client: client}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", ServiceError{Status: apiErr.Code, Err: err}
		}
		return "", ServiceError{Err: err}
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ServiceError{Err: errors.New("empty response")}
	}
	return text, nil
}
