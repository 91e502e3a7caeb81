// Package advisor turns a query into a grounded styling recommendation:
// filter the catalog, hand the candidates to the model, then validate what
// comes back against the same candidates.
package advisor

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/style-advisor/internal/llm"
	"github.com/sells-group/style-advisor/internal/metrics"
	"github.com/sells-group/style-advisor/internal/model"
	"github.com/sells-group/style-advisor/internal/structured"
)

// ErrNoCandidates means no catalog product satisfied the query. It is a
// terminal, user-facing empty state and the model is never called.
var ErrNoCandidates = eris.New("advisor: no matching products")

// Catalog is the read-only product source the advisor filters.
type Catalog interface {
	Products() []model.Product
	Currency() string
}

// Advisor runs the recommendation pipeline. It is safe for concurrent use.
type Advisor struct {
	catalog Catalog
	gen     llm.Generator
	metrics *metrics.Recorder
	limit   int

	mu    sync.Mutex
	seeds *rand.Rand
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithMetrics records pipeline outcomes on rec.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(a *Advisor) { a.metrics = rec }
}

// WithLimit overrides RetrievalLimit. Non-positive values are ignored.
func WithLimit(n int) Option {
	return func(a *Advisor) {
		if n > 0 {
			a.limit = n
		}
	}
}

// WithSeed makes candidate shuffling reproducible.
func WithSeed(seed1, seed2 uint64) Option {
	return func(a *Advisor) { a.seeds = rand.New(rand.NewPCG(seed1, seed2)) }
}

// New returns an Advisor over cat that asks gen for recommendations.
func New(cat Catalog, gen llm.Generator, opts ...Option) *Advisor {
	a := &Advisor{
		catalog: cat,
		gen:     gen,
		limit:   RetrievalLimit,
		seeds:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Recommend runs one query end to end. Failures wrap ErrNoCandidates,
// llm.ErrUpstreamUnavailable, llm.ErrUpstreamTimeout or a
// *structured.ExtractionError carrying the raw model text. Suggestions that
// are not in the candidate pool are dropped and reported as warnings.
func (a *Advisor) Recommend(ctx context.Context, c model.QueryCriteria) (*model.Recommendation, error) {
	c = c.Normalized()
	outfit := c.IsFullOutfit()

	pool := Filter(a.catalog.Products(), c, a.limit, a.newRand())
	a.metrics.ObserveCandidates(len(pool))
	if len(pool) == 0 {
		a.metrics.IncRecommendation(metrics.OutcomeNoCandidates)
		return nil, eris.Wrap(ErrNoCandidates, "advisor: recommend")
	}

	currency := a.catalog.Currency()
	prompt := BuildRecommendationPrompt(c, FormatCandidates(pool), currency)

	resp, err := a.gen.Generate(ctx, llm.Request{Phase: llm.PhaseRecommend, Prompt: prompt})
	if err != nil {
		if errors.Is(err, llm.ErrUpstreamTimeout) {
			a.metrics.IncRecommendation(metrics.OutcomeTimeout)
		} else {
			a.metrics.IncRecommendation(metrics.OutcomeUpstream)
		}
		return nil, eris.Wrap(err, "advisor: generate recommendation")
	}

	var payload model.RecommendationPayload
	if err := structured.Extract(resp.Text, &payload); err != nil {
		a.metrics.IncRecommendation(metrics.OutcomeBadOutput)
		zap.L().Warn("advisor: unusable model output",
			zap.Int("raw_len", len(resp.Text)),
			zap.Error(err),
		)
		return nil, eris.Wrap(err, "advisor: extract recommendation")
	}

	items, warnings := Ground(payload.SuggestedProducts, pool)
	for _, w := range warnings {
		zap.L().Warn("advisor: ungrounded suggestion",
			zap.String("name", w.Name),
			zap.String("category", w.Category),
		)
	}
	a.metrics.AddUngrounded(len(warnings))

	total, exceeded := Reconcile(items, c.Budget, outfit)
	rec := &model.Recommendation{
		StylingProposal: payload.StylingProposal,
		Items:           items,
		TotalPrice:      total,
		BudgetExceeded:  exceeded,
		Budget:          c.Budget,
		Currency:        currency,
		OutfitMode:      outfit,
		CandidateCount:  len(pool),
		Warnings:        warnings,
	}

	if rec.Empty() {
		a.metrics.IncRecommendation(metrics.OutcomeEmptyGrounded)
	} else {
		a.metrics.IncRecommendation(metrics.OutcomeOK)
	}
	zap.L().Info("advisor: recommendation ready",
		zap.Bool("outfit_mode", outfit),
		zap.Int("candidates", len(pool)),
		zap.Int("items", len(items)),
		zap.Int("ungrounded", len(warnings)),
		zap.String("total", total.String()),
		zap.Bool("budget_exceeded", exceeded),
	)
	return rec, nil
}

// newRand derives an independent shuffle source for one query.
func (a *Advisor) newRand() *rand.Rand {
	a.mu.Lock()
	defer a.mu.Unlock()
	return rand.New(rand.NewPCG(a.seeds.Uint64(), a.seeds.Uint64()))
}
