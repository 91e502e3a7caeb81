package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRates() Rates {
	return Rates{
		Gemini: map[string]ModelRate{
			"flash": {Input: 0.30, Output: 2.50},
		},
		Anthropic: map[string]ModelRate{
			"haiku": {Input: 0.80, Output: 4.00},
		},
	}
}

func TestGemini(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(testRates())

	tests := []struct {
		name   string
		model  string
		input  int64
		output int64
		want   float64
	}{
		{name: "one million in, 100k out", model: "flash", input: 1_000_000, output: 100_000, want: 0.30 + 0.25},
		{name: "zero tokens", model: "flash", want: 0},
		{name: "unknown model", model: "nope", input: 1_000_000, output: 1_000_000, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, calc.Gemini(tt.model, tt.input, tt.output), 1e-9)
		})
	}
}

func TestClaude(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(testRates())

	assert.InDelta(t, 0.80+0.40, calc.Claude("haiku", 1_000_000, 100_000), 1e-9)
	assert.Zero(t, calc.Claude("sonnet", 1_000_000, 100_000))
}

func TestEstimate(t *testing.T) {
	t.Parallel()
	calc := NewCalculator(testRates())

	assert.InDelta(t, 0.30, calc.Estimate("gemini", "flash", 1_000_000, 0), 1e-9)
	assert.InDelta(t, 4.00, calc.Estimate("anthropic", "haiku", 0, 1_000_000), 1e-9)
	assert.Zero(t, calc.Estimate("openai", "flash", 1_000_000, 0))
}

func TestDefaultRates(t *testing.T) {
	t.Parallel()
	rates := DefaultRates()

	assert.Contains(t, rates.Gemini, "gemini-2.5-flash")
	assert.Contains(t, rates.Anthropic, "claude-haiku-4-5-20251001")
	for name, r := range rates.Gemini {
		assert.Positive(t, r.Input, name)
		assert.Greater(t, r.Output, r.Input, name)
	}
}
