// Package api serves the advisor over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sells-group/style-advisor/internal/catalog"
	"github.com/sells-group/style-advisor/internal/model"
)

// Recommender runs one recommendation query.
type Recommender interface {
	Recommend(ctx context.Context, c model.QueryCriteria) (*model.Recommendation, error)
}

// FacetSource exposes the catalog option lists.
type FacetSource interface {
	Facets() catalog.Facets
	Len() int
}

// Deps are the collaborators the router serves.
type Deps struct {
	Advisor     Recommender
	Catalog     FacetSource
	Metrics     http.Handler // optional; mounted at /metrics
	CORSOrigins []string
}

// NewRouter builds the HTTP handler.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		chimw.RequestID,
		chimw.RealIP,
		Logging,
		Recoverer,
		cors.New(cors.Options{
			AllowedOrigins: d.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}).Handler,
	)

	r.Get("/health", Health(d.Catalog))
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/facets", GetFacets(d.Catalog))
		r.Post("/recommendations", PostRecommendation(d.Advisor))
	})

	return r
}
