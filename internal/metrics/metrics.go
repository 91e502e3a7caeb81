// Package metrics exposes Prometheus instruments for the recommendation
// pipeline and the tagging run. A nil *Recorder is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "style_advisor"

// Recommendation outcomes.
const (
	OutcomeOK            = "ok"
	OutcomeNoCandidates  = "no_candidates"
	OutcomeUpstream      = "upstream_error"
	OutcomeTimeout       = "upstream_timeout"
	OutcomeBadOutput     = "bad_model_output"
	OutcomeEmptyGrounded = "empty_grounded"
)

// Recorder holds the pipeline metrics.
type Recorder struct {
	recommendations *prometheus.CounterVec
	candidates      prometheus.Histogram
	ungrounded      prometheus.Counter
	upstream        *prometheus.HistogramVec
	tagged          *prometheus.CounterVec
}

// New registers the pipeline metrics on reg. A nil registerer yields a
// Recorder whose methods are no-ops.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		return &Recorder{}
	}
	recommendations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recommendations_total",
		Help:      "Recommendation requests by outcome.",
	}, []string{"outcome"})
	candidates := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "candidate_pool_size",
		Help:      "Number of candidates sent to the model per query.",
		Buckets:   []float64{0, 1, 5, 10, 20, 30},
	})
	ungrounded := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ungrounded_suggestions_total",
		Help:      "Model suggestions dropped because they were not in the candidate pool.",
	})
	upstream := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_duration_seconds",
		Help:      "Latency of generative model calls.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60},
	}, []string{"provider", "phase"})
	tagged := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tagged_products_total",
		Help:      "Products processed by the tagging run by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(recommendations, candidates, ungrounded, upstream, tagged)
	return &Recorder{
		recommendations: recommendations,
		candidates:      candidates,
		ungrounded:      ungrounded,
		upstream:        upstream,
		tagged:          tagged,
	}
}

// IncRecommendation counts one finished recommendation request.
func (r *Recorder) IncRecommendation(outcome string) {
	if r == nil || r.recommendations == nil {
		return
	}
	r.recommendations.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ObserveCandidates records the candidate pool size of a query.
func (r *Recorder) ObserveCandidates(n int) {
	if r == nil || r.candidates == nil {
		return
	}
	r.candidates.Observe(float64(n))
}

// AddUngrounded adds n dropped suggestions.
func (r *Recorder) AddUngrounded(n int) {
	if r == nil || r.ungrounded == nil || n <= 0 {
		return
	}
	r.ungrounded.Add(float64(n))
}

// ObserveUpstream records the duration of one model call.
func (r *Recorder) ObserveUpstream(provider, phase string, d time.Duration) {
	if r == nil || r.upstream == nil {
		return
	}
	r.upstream.WithLabelValues(normalizeLabel(provider), normalizeLabel(phase)).Observe(d.Seconds())
}

// IncTagged counts one product processed by the tagging run.
func (r *Recorder) IncTagged(outcome string) {
	if r == nil || r.tagged == nil {
		return
	}
	r.tagged.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
