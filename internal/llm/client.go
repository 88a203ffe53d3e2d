package llm

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aaronromeo/fitgen/internal/llm/provider"
	"github.com/aaronromeo/fitgen/internal/plan"
	"github.com/aaronromeo/fitgen/internal/upstream"
)

// ErrEmptyPrompt is returned by Ask for a blank prompt.
var ErrEmptyPrompt = errors.New("prompt must not be empty")

type Client struct {
	provider       provider.Provider
	logger         *slog.Logger
	strictCalories bool
}

type LLMClientOption func(*Client)

func WithProvider(p provider.Provider) LLMClientOption {
	return func(c *Client) {
		c.provider = p
	}
}

func WithLogger(l *slog.Logger) LLMClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// WithCalorieCheck rejects diet plans whose daily totals miss the requested
// calories by more than plan.CalorieTolerance.
func WithCalorieCheck() LLMClientOption {
	return func(c *Client) {
		c.strictCalories = true
	}
}

func New(opts ...LLMClientOption) (*Client, error) {
	c := &Client{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}

	if c.provider == nil {
		return nil, errors.New("llm provider not configured")
	}
	if err := c.provider.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// GenerateWorkout validates spec, asks the model for a plan and returns it
// only if the reply matches the workout plan schema.
func (c *Client) GenerateWorkout(ctx context.Context, spec plan.WorkoutSpec) (plan.WorkoutPlan, error) {
	if err := spec.Validate(); err != nil {
		return plan.WorkoutPlan{}, err
	}

	system, user := BuildWorkoutPrompt(spec)
	out, err := c.complete(ctx, provider.ProviderResponseFormat{
		Name:         provider.ResponseFormatWorkoutPlan,
		SystemPrompt: system,
		UserPrompt:   user,
		JSONObject:   true,
	})
	if err != nil {
		return plan.WorkoutPlan{}, err
	}

	p, err := WorkoutPlanFromJSON([]byte(out))
	if err != nil {
		return plan.WorkoutPlan{}, upstream.ContractViolation(out, err)
	}
	c.logger.Debug("workout plan generated", "days", len(p.Days))
	return p, nil
}

// GenerateDiet validates spec, asks the model for a plan and returns it only
// if the reply matches the diet plan schema.
func (c *Client) GenerateDiet(ctx context.Context, spec plan.DietSpec) (plan.DietPlan, error) {
	if err := spec.Validate(); err != nil {
		return plan.DietPlan{}, err
	}

	system, user := BuildDietPrompt(spec)
	out, err := c.complete(ctx, provider.ProviderResponseFormat{
		Name:         provider.ResponseFormatDietPlan,
		SystemPrompt: system,
		UserPrompt:   user,
		JSONObject:   true,
	})
	if err != nil {
		return plan.DietPlan{}, err
	}

	p, err := DietPlanFromJSON([]byte(out))
	if err != nil {
		return plan.DietPlan{}, upstream.ContractViolation(out, err)
	}
	if c.strictCalories {
		if err := p.CheckCalories(spec.CaloriesPerDay, plan.CalorieTolerance); err != nil {
			return plan.DietPlan{}, upstream.ContractViolation(out, err)
		}
	}
	c.logger.Debug("diet plan generated", "days", len(p.Days))
	return p, nil
}

// Ask sends a free-form prompt under the same system prompt and returns the
// reply text as is.
func (c *Client) Ask(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	return c.complete(ctx, provider.ProviderResponseFormat{
		Name:         provider.ResponseFormatChat,
		SystemPrompt: strings.TrimSpace(SystemPrompt),
		UserPrompt:   prompt,
	})
}

func (c *Client) complete(ctx context.Context, prf provider.ProviderResponseFormat) (string, error) {
	out, err := c.provider.Complete(ctx, prf)
	if err != nil {
		return "", upstream.From(err)
	}
	c.logger.Debug("completion received", "format", prf.Name, "bytes", len(out))
	return out, nil
}
