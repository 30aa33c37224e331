package llm

import (
	"context"
	"errors"
	"math"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"vet-discharge-notes/internal/config"
)

// ErrGenerationFailed is the single outcome of any upstream failure.  The
// failure category is logged but not carried past the client.
var ErrGenerationFailed = errors.New("discharge note generation failed")

// Client is what the discharge service needs from a completion backend.
// Complete returns the raw model text, which may be empty.
type Client interface {
	Complete(ctx context.Context, systemInstruction, userContent string) (string, error)
}

// OpenAIClient calls the OpenAI chat completion API.  Credentials and model
// parameters come from the Config it was built with.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	log         zerolog.Logger
}

// NewOpenAIClient constructs an OpenAI-backed client from cfg.  The
// credential is taken from cfg only; the environment is not consulted.
func NewOpenAIClient(cfg *config.Config, logger zerolog.Logger) *OpenAIClient {
	// A zero temperature is dropped by the request's omitempty tag, so the
	// API would fall back to its own default.
	temperature := cfg.OpenAITemperature
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	oc := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		oc.BaseURL = cfg.OpenAIBaseURL
	}
	return &OpenAIClient{
		client:      openai.NewClientWithConfig(oc),
		model:       cfg.OpenAIModel,
		temperature: temperature,
		maxTokens:   cfg.OpenAIMaxTokens,
		log:         logger.With().Str("component", "llm").Str("model", cfg.OpenAIModel).Logger(),
	}
}

// Complete sends one system and one user message and returns the first
// choice's content.  A response without choices yields "".  Errors are
// classified, logged and collapsed into ErrGenerationFailed.  No retry.
func (c *OpenAIClient) Complete(ctx context.Context, systemInstruction, userContent string) (string, error) {
	c.log.Info().Msg("calling completion API")
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: userContent},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		kind := Classify(err)
		c.log.Error().Err(err).Str("category", string(kind)).Msg(kind.Describe())
		return "", ErrGenerationFailed
	}
	c.log.Info().Int("total_tokens", resp.Usage.TotalTokens).Msg("completion API call completed")

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
