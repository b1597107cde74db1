package interp

import (
	"context"
	"fmt"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 512

// AnthropicAdapter interprets commands through the Anthropic API. It is the
// hosted alternative to the default local Ollama interpreter.
type AnthropicAdapter struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewAnthropic creates an adapter using ANTHROPIC_API_KEY (and optionally
// ANTHROPIC_BASE_URL) from the environment.
func NewAnthropic(model string) (*AnthropicAdapter, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_AUTH_TOKEN")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is not set")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL := os.Getenv("ANTHROPIC_BASE_URL"); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	m := anthropic.Model(model)
	if model == "" {
		m = anthropic.ModelClaude3_5HaikuLatest
	}

	return &AnthropicAdapter{
		client: anthropic.NewClient(opts...),
		model:  m,
	}, nil
}

// Name implements Adapter.
func (a *AnthropicAdapter) Name() string { return "anthropic/" + string(a.model) }

// Infer implements Adapter with a single non-streaming message call.
func (a *AnthropicAdapter) Infer(ctx context.Context, system, user string) (string, error) {
	msg, err := a.client.Beta.Messages.New(ctx, anthropic.BetaMessageNewParams{
		Model:     a.model,
		MaxTokens: anthropicMaxTokens,
		System: []anthropic.BetaTextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.BetaMessageParam{
			anthropic.NewBetaUserMessage(anthropic.NewBetaTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}

	var parts []string
	for _, block := range msg.Content {
		if b, ok := block.AsAny().(anthropic.BetaTextBlock); ok && b.Text != "" {
			parts = append(parts, b.Text)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text content in reply")
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}
