// Package llm is the boundary to the external generative model. Providers
// are thin adapters over pkg/gemini and pkg/anthropic; Client adds the call
// timeout, error classification, latency metrics and cost logging.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/style-advisor/internal/cost"
	"github.com/sells-group/style-advisor/internal/metrics"
)

// DefaultTimeout bounds a single model call.
const DefaultTimeout = 60 * time.Second

// Call phases, used for logging and metric labels.
const (
	PhaseRecommend = "recommend"
	PhaseTagging   = "tagging"
)

var (
	// ErrUpstreamUnavailable is the kind of every failed model call that did
	// not hit the deadline.
	ErrUpstreamUnavailable = eris.New("llm: upstream unavailable")
	// ErrUpstreamTimeout is the kind of a model call cut off by its deadline.
	ErrUpstreamTimeout = eris.New("llm: upstream timeout")
)

// Request is one prompt sent to the model.
type Request struct {
	Phase  string
	Prompt string
}

// Response is the raw model output plus token accounting.
type Response struct {
	Text         string
	Model        string
	InputTokens  int64
	OutputTokens int64
}

// Generator produces raw text for a prompt.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// Provider is a vendor adapter. Complete must honor ctx cancellation.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (*Response, error)
}

// UpstreamError reports a failed model call. Kind is ErrUpstreamUnavailable
// or ErrUpstreamTimeout, so callers can branch with errors.Is.
type UpstreamError struct {
	Kind     error
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Kind.Error(), e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Client implements Generator on top of a Provider.
type Client struct {
	provider Provider
	timeout  time.Duration
	calc     *cost.Calculator
	metrics  *metrics.Recorder
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithCostCalculator enables per-call cost logging.
func WithCostCalculator(calc *cost.Calculator) Option {
	return func(c *Client) { c.calc = calc }
}

// WithMetrics records call latency on rec.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(c *Client) { c.metrics = rec }
}

// New wraps p in a Client.
func New(p Provider, opts ...Option) *Client {
	c := &Client{provider: p, timeout: DefaultTimeout}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Generate sends req to the provider with the configured deadline. It makes
// exactly one attempt.
func (c *Client) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.provider.Complete(ctx, req.Prompt)
	elapsed := time.Since(start)
	c.metrics.ObserveUpstream(c.provider.Name(), req.Phase, elapsed)

	if err != nil {
		kind := ErrUpstreamUnavailable
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			kind = ErrUpstreamTimeout
		}
		return nil, &UpstreamError{Kind: kind, Provider: c.provider.Name(), Err: err}
	}

	fields := []zap.Field{
		zap.String("provider", c.provider.Name()),
		zap.String("model", resp.Model),
		zap.String("phase", req.Phase),
		zap.Int64("input_tokens", resp.InputTokens),
		zap.Int64("output_tokens", resp.OutputTokens),
		zap.Duration("elapsed", elapsed),
	}
	if c.calc != nil {
		fields = append(fields, zap.Float64("cost_usd",
			c.calc.Estimate(c.provider.Name(), resp.Model, resp.InputTokens, resp.OutputTokens)))
	}
	zap.L().Debug("llm: model call complete", fields...)

	return resp, nil
}
