package main

import (
	"context"
	"maps"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/style-advisor/internal/config"
	"github.com/sells-group/style-advisor/internal/cost"
	"github.com/sells-group/style-advisor/internal/llm"
	"github.com/sells-group/style-advisor/internal/metrics"
	"github.com/sells-group/style-advisor/pkg/anthropic"
	"github.com/sells-group/style-advisor/pkg/gemini"
)

// newGenerator builds the model client for the configured provider.
func newGenerator(ctx context.Context, c *config.Config, rec *metrics.Recorder) (*llm.Client, error) {
	var p llm.Provider
	switch c.LLM.Provider {
	case llm.ProviderAnthropic:
		client := anthropic.NewClient(c.Anthropic.Key, anthropic.WithBaseURL(c.Anthropic.BaseURL))
		p = llm.NewAnthropic(client, c.Anthropic.Model, c.Anthropic.MaxTokens, c.LLM.Temperature)
	case llm.ProviderGemini:
		client, err := gemini.NewClient(ctx, c.Gemini.Key, gemini.WithBaseURL(c.Gemini.BaseURL))
		if err != nil {
			return nil, err
		}
		var temp *float32
		if c.LLM.Temperature != nil {
			t := float32(*c.LLM.Temperature)
			temp = &t
		}
		p = llm.NewGemini(client, c.Gemini.Model, temp)
	default:
		return nil, eris.Errorf("unknown llm provider %q", c.LLM.Provider)
	}

	zap.L().Debug("model provider ready", zap.String("provider", p.Name()))

	return llm.New(p,
		llm.WithTimeout(c.LLM.Timeout()),
		llm.WithCostCalculator(cost.NewCalculator(ratesFromConfig(c.Pricing))),
		llm.WithMetrics(rec),
	), nil
}

// ratesFromConfig overlays configured prices on the built-in table.
func ratesFromConfig(p config.PricingConfig) cost.Rates {
	rates := cost.DefaultRates()
	maps.Copy(rates.Gemini, toModelRates(p.Gemini))
	maps.Copy(rates.Anthropic, toModelRates(p.Anthropic))
	return rates
}

func toModelRates(in map[string]config.ModelPricing) map[string]cost.ModelRate {
	out := make(map[string]cost.ModelRate, len(in))
	for name, mp := range in {
		out[name] = cost.ModelRate{Input: mp.Input, Output: mp.Output}
	}
	return out
}
