package llm

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/style-advisor/internal/resilience"
	"github.com/sells-group/style-advisor/pkg/anthropic"
	"github.com/sells-group/style-advisor/pkg/gemini"
)

// Provider names accepted by configuration.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// Gemini adapts a gemini.Client.
type Gemini struct {
	client      gemini.Client
	model       string
	temperature *float32
}

// NewGemini returns a Provider that calls model through client. A nil
// temperature leaves the service default.
func NewGemini(client gemini.Client, model string, temperature *float32) *Gemini {
	return &Gemini{client: client, model: model, temperature: temperature}
}

// Name implements Provider.
func (g *Gemini) Name() string { return ProviderGemini }

// Complete implements Provider.
func (g *Gemini) Complete(ctx context.Context, prompt string) (*Response, error) {
	resp, err := g.client.GenerateContent(ctx, gemini.GenerateRequest{
		Model:       g.model,
		Prompt:      prompt,
		Temperature: g.temperature,
	})
	if err != nil {
		if code, ok := gemini.StatusCode(err); ok {
			err = resilience.MarkStatus(err, code)
		}
		return nil, eris.Wrap(err, "llm: gemini complete")
	}
	return &Response{
		Text:         resp.Text,
		Model:        g.model,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CandidateTokens,
	}, nil
}

// Anthropic adapts an anthropic.Client.
type Anthropic struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature *float64
}

// NewAnthropic returns a Provider that calls model through client.
func NewAnthropic(client anthropic.Client, model string, maxTokens int64, temperature *float64) *Anthropic {
	return &Anthropic{client: client, model: model, maxTokens: maxTokens, temperature: temperature}
}

// Name implements Provider.
func (a *Anthropic) Name() string { return ProviderAnthropic }

// Complete implements Provider.
func (a *Anthropic) Complete(ctx context.Context, prompt string) (*Response, error) {
	resp, err := a.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       a.model,
		MaxTokens:   a.maxTokens,
		Messages:    []anthropic.Message{{Role: "user", Content: prompt}},
		Temperature: a.temperature,
	})
	if err != nil {
		if code, ok := anthropic.StatusCode(err); ok {
			err = resilience.MarkStatus(err, code)
		}
		return nil, eris.Wrap(err, "llm: anthropic complete")
	}
	return &Response{
		Text:         resp.Text(),
		Model:        a.model,
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
	}, nil
}
