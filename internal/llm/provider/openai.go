package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/aaronromeo/fitgen/internal/upstream"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

func NewOpenAIProvider(opts ...OpenAIProviderOption) (*OpenAIProvider, error) {
	p := &OpenAIProvider{model: DefaultModel, temperature: DefaultTemperature, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}

	// Retries live in the transport so openai-go's own retry loop stays off.
	// Error responses pass through untouched so their status can be classified.
	h := retryablehttp.NewClient()
	h.RetryMax = p.retries
	h.ErrorHandler = retryablehttp.PassthroughErrorHandler
	if p.logger != nil {
		h.Logger = p.logger
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(p.apiKey),
		option.WithHTTPClient(h.StandardClient()),
		option.WithMaxRetries(0),
	}
	if p.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(p.baseURL))
	}
	p.Client = openai.NewClient(reqOpts...)

	return p, nil
}

func (p *OpenAIProvider) Validate() error {
	if p.apiKey == "" {
		return fmt.Errorf("api key not set")
	}
	if p.model == "" {
		return fmt.Errorf("model not set")
	}
	return nil
}

// Model returns the configured model identifier.
func (p *OpenAIProvider) Model() string { return p.model }

func (p *OpenAIProvider) Complete(ctx context.Context, prf ProviderResponseFormat) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prf.SystemPrompt),
			openai.UserMessage(prf.UserPrompt),
		},
		Model:       openai.ChatModel(p.model),
		Temperature: openai.Float(p.temperature),
	}
	if prf.JSONObject {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		}
	}

	chat, err := p.Client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", classify(err)
	}
	if len(chat.Choices) == 0 {
		return "", upstream.New(upstream.KindUnexpected, errors.New("completion returned no choices"))
	}
	return strings.TrimSpace(chat.Choices[0].Message.Content), nil
}

// classify maps openai-go and transport errors onto upstream kinds.
func classify(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		e := &upstream.Error{Kind: kindForStatus(apiErr.StatusCode), StatusCode: apiErr.StatusCode, Err: err}
		if apiErr.Response != nil {
			e.RequestID = apiErr.Response.Header.Get("x-request-id")
		}
		return e
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return upstream.New(upstream.KindConnectivity, err)
	}
	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return upstream.New(upstream.KindConnectivity, err)
	}
	return upstream.New(upstream.KindUnexpected, err)
}

func kindForStatus(code int) upstream.Kind {
	switch code {
	case http.StatusUnauthorized:
		return upstream.KindAuth
	case http.StatusNotFound:
		return upstream.KindNotFound
	case http.StatusTooManyRequests:
		return upstream.KindRateLimited
	default:
		return upstream.KindAPI
	}
}
