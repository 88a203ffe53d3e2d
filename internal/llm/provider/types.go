package provider

import (
	"context"
	"log/slog"
	"time"

	"github.com/openai/openai-go/v2"
)

const (
	DefaultModel       = "gpt-4o-mini"
	DefaultTemperature = 0.3

	ResponseFormatWorkoutPlan = "workout_plan"
	ResponseFormatDietPlan    = "diet_plan"
	ResponseFormatChat        = "chat"
)

// Provider defines the minimal interface for LLM completion.
type Provider interface {
	Complete(ctx context.Context, req ProviderResponseFormat) (string, error)
	Validate() error
}

// OpenAIProvider implements Provider using the official openai-go client.
type OpenAIProvider struct {
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	timeout     time.Duration
	retries     int
	logger      *slog.Logger

	Client openai.Client
}

type OpenAIProviderOption func(*OpenAIProvider)

func WithAPIKey(apiKey string) OpenAIProviderOption {
	return func(p *OpenAIProvider) {
		p.apiKey = apiKey
	}
}

func WithModel(model string) OpenAIProviderOption {
	return func(p *OpenAIProvider) {
		p.model = model
	}
}

// WithBaseURL points the client at an OpenAI-compatible endpoint.
func WithBaseURL(u string) OpenAIProviderOption {
	return func(p *OpenAIProvider) {
		p.baseURL = u
	}
}

func WithTemperature(t float64) OpenAIProviderOption {
	return func(p *OpenAIProvider) {
		p.temperature = t
	}
}

// WithTimeout bounds each completion call. Zero means no limit.
func WithTimeout(d time.Duration) OpenAIProviderOption {
	return func(p *OpenAIProvider) {
		p.timeout = d
	}
}

// WithRetries sets transport-level retries. The default is a single attempt.
func WithRetries(n int) OpenAIProviderOption {
	return func(p *OpenAIProvider) {
		p.retries = n
	}
}

func WithLogger(l *slog.Logger) OpenAIProviderOption {
	return func(p *OpenAIProvider) {
		p.logger = l
	}
}

// ProviderResponseFormat is a single completion request.
type ProviderResponseFormat struct {
	Name         string
	SystemPrompt string
	UserPrompt   string
	// JSONObject asks the service for a syntactically valid JSON object.
	// It constrains syntax only; the caller still validates the shape.
	JSONObject bool
}
