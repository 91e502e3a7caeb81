package api

import (
	"net/http"

	"github.com/sells-group/style-advisor/internal/model"
)

// Health reports liveness and the loaded catalog size.
func Health(cat FacetSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteSuccess(w, map[string]any{
			"status":   "ok",
			"products": cat.Len(),
		})
	}
}

// GetFacets returns the option lists a query form offers.
func GetFacets(cat FacetSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteSuccess(w, cat.Facets())
	}
}

// PostRecommendation runs one query. Suggestions dropped by grounding come
// back as warnings next to the remaining items.
func PostRecommendation(adv Recommender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c model.QueryCriteria
		if err := DecodeJSONBody(r, &c); err != nil {
			WriteError(w, err)
			return
		}

		rec, err := adv.Recommend(r.Context(), c)
		if err != nil {
			WriteError(w, err)
			return
		}
		WriteSuccess(w, rec)
	}
}
