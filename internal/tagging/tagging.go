// Package tagging enriches catalog products with occasion and style tags,
// one model call per product, paced to stay under provider quotas.
package tagging

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/style-advisor/internal/llm"
	"github.com/sells-group/style-advisor/internal/metrics"
	"github.com/sells-group/style-advisor/internal/model"
	"github.com/sells-group/style-advisor/internal/resilience"
	"github.com/sells-group/style-advisor/internal/structured"
)

// Defaults sized for the Gemini free tier (250 requests/day, 10/minute).
const (
	DefaultMaxProducts = 240
	DefaultBatchSize   = 5
	DefaultBatchDelay  = 30 * time.Second
)

// Per-product outcomes, also used as metric labels.
const (
	outcomeTagged = "tagged"
	outcomeFailed = "failed"
)

// Config controls pacing and retry for a tagging run.
type Config struct {
	MaxProducts       int
	BatchSize         int
	BatchDelay        time.Duration
	RequestsPerMinute int
	Retry             resilience.RetryConfig
}

func (c Config) withDefaults() Config {
	if c.MaxProducts <= 0 {
		c.MaxProducts = DefaultMaxProducts
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.BatchDelay < 0 {
		c.BatchDelay = 0
	}
	return c
}

// Stats summarizes a run.
type Stats struct {
	Processed int `json:"processed"`
	Tagged    int `json:"tagged"`
	Failed    int `json:"failed"`
	Pauses    int `json:"pauses"`
}

// Tagger runs the tagging loop. Products are processed sequentially.
type Tagger struct {
	gen     llm.Generator
	cfg     Config
	limiter *rate.Limiter
	metrics *metrics.Recorder
	sleep   func(ctx context.Context, d time.Duration) error
}

// Option configures a Tagger.
type Option func(*Tagger)

// WithMetrics records per-product outcomes on rec.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(t *Tagger) { t.metrics = rec }
}

// WithSleep replaces the batch-delay sleep.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(t *Tagger) { t.sleep = fn }
}

// New returns a Tagger that asks gen for tags.
func New(gen llm.Generator, cfg Config, opts ...Option) *Tagger {
	cfg = cfg.withDefaults()
	t := &Tagger{gen: gen, cfg: cfg, sleep: resilience.Sleep}
	if cfg.RequestsPerMinute > 0 {
		t.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}
	for _, o := range opts {
		o(t)
	}
	if t.cfg.Retry.OnRetry == nil {
		t.cfg.Retry.OnRetry = resilience.RetryLogger("llm", llm.PhaseTagging)
	}
	return t
}

// Run tags at most MaxProducts products from the head of products and
// returns the tagged copies. A product whose call or response fails keeps
// empty tag lists and the run continues. Cancellation aborts the run and
// returns no products, so the caller never writes a partial file.
func (t *Tagger) Run(ctx context.Context, products []model.Product) ([]model.Product, Stats, error) {
	n := min(len(products), t.cfg.MaxProducts)
	out := make([]model.Product, 0, n)
	var stats Stats

	zap.L().Info("tagging: starting run",
		zap.Int("loaded", len(products)),
		zap.Int("to_process", n),
		zap.Int("batch_size", t.cfg.BatchSize),
		zap.Duration("batch_delay", t.cfg.BatchDelay),
	)

	for i := range n {
		if err := ctx.Err(); err != nil {
			return nil, stats, eris.Wrap(err, "tagging: run cancelled")
		}
		p := products[i]

		occasion, style, err := t.tag(ctx, p)
		if err != nil {
			if ctx.Err() != nil {
				return nil, stats, eris.Wrap(ctx.Err(), "tagging: run cancelled")
			}
			zap.L().Warn("tagging: product left untagged",
				zap.Int("index", i),
				zap.String("product", p.Name),
				zap.Error(err),
			)
			stats.Failed++
			t.metrics.IncTagged(outcomeFailed)
		} else {
			stats.Tagged++
			t.metrics.IncTagged(outcomeTagged)
		}

		p.OccasionTags = model.NormalizeTags(occasion)
		p.StyleTags = model.NormalizeTags(style)
		out = append(out, p)
		stats.Processed++

		zap.L().Debug("tagging: product processed",
			zap.Int("index", i+1),
			zap.Int("total", n),
			zap.String("product", p.Name),
			zap.Strings("occasion_tags", p.OccasionTags),
			zap.Strings("style_tags", p.StyleTags),
		)

		if (i+1)%t.cfg.BatchSize == 0 && i+1 < n && t.cfg.BatchDelay > 0 {
			zap.L().Info("tagging: batch complete, pausing",
				zap.Int("processed", i+1),
				zap.Duration("delay", t.cfg.BatchDelay),
			)
			stats.Pauses++
			if err := t.sleep(ctx, t.cfg.BatchDelay); err != nil {
				return nil, stats, eris.Wrap(err, "tagging: run cancelled")
			}
		}
	}

	zap.L().Info("tagging: run finished",
		zap.Int("processed", stats.Processed),
		zap.Int("tagged", stats.Tagged),
		zap.Int("failed", stats.Failed),
	)
	return out, stats, nil
}

// tag makes one model call for p, retrying transient upstream failures
// according to the retry config.
func (t *Tagger) tag(ctx context.Context, p model.Product) ([]string, []string, error) {
	prompt := BuildTagPrompt(p)
	payload, err := resilience.DoVal(ctx, t.cfg.Retry, func(ctx context.Context) (model.TagPayload, error) {
		if t.limiter != nil {
			if err := t.limiter.Wait(ctx); err != nil {
				return model.TagPayload{}, eris.Wrap(err, "tagging: rate limit wait")
			}
		}
		resp, err := t.gen.Generate(ctx, llm.Request{Phase: llm.PhaseTagging, Prompt: prompt})
		if err != nil {
			return model.TagPayload{}, err
		}
		var tp model.TagPayload
		if err := structured.Extract(resp.Text, &tp); err != nil {
			return model.TagPayload{}, err
		}
		return tp, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return payload.OccasionTags, payload.StyleTags, nil
}
