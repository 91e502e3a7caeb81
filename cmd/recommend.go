package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sells-group/style-advisor/internal/advisor"
	"github.com/sells-group/style-advisor/internal/api"
	"github.com/sells-group/style-advisor/internal/catalog"
	"github.com/sells-group/style-advisor/internal/metrics"
	"github.com/sells-group/style-advisor/internal/model"
	"github.com/sells-group/style-advisor/internal/structured"
)

var recommendFlags struct {
	catalogPath  string
	gender       string
	category     string
	color        string
	occasion     string
	style        string
	keywords     string
	occasionTags []string
	styleTags    []string
	maxPrice     float64
	budget       float64
	output       string
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Run one styling query against the catalog",
	Example: `  style-advisor recommend --gender Women --category "Full Outfit" \
    --occasion wedding --style elegant --budget 600 --occasion-tags party`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("recommend"); err != nil {
			return err
		}

		criteria := recommendCriteria()
		if err := model.Validate(criteria); err != nil {
			return eris.Wrap(err, "invalid criteria")
		}

		path := recommendFlags.catalogPath
		if path == "" {
			path = cfg.Catalog.Path
		}
		cat, err := catalog.Load(path)
		if err != nil {
			return err
		}

		gen, err := newGenerator(ctx, cfg, metrics.New(nil))
		if err != nil {
			return err
		}
		adv := advisor.New(cat, gen, advisor.WithLimit(cfg.Retrieval.Limit))

		return runRecommend(ctx, cmd.OutOrStdout(), adv, criteria, recommendFlags.output)
	},
}

func recommendCriteria() model.QueryCriteria {
	f := recommendFlags
	return model.QueryCriteria{
		Gender:       f.gender,
		Category:     f.category,
		MaxPrice:     decimal.NewFromFloat(f.maxPrice),
		Color:        f.color,
		OccasionTags: f.occasionTags,
		StyleTags:    f.styleTags,
		Occasion:     f.occasion,
		Style:        f.style,
		Keywords:     f.keywords,
		Budget:       decimal.NewFromFloat(f.budget),
	}
}

// runRecommend runs the query and prints the result. A reply without a
// structured block is printed as raw text before the error is returned.
func runRecommend(ctx context.Context, w io.Writer, adv api.Recommender, c model.QueryCriteria, format string) error {
	rec, err := adv.Recommend(ctx, c)
	if err != nil {
		if raw, ok := structured.RawText(err); ok {
			_, _ = fmt.Fprintln(w, raw)
		}
		return err
	}
	return writeOutput(w, rec, format)
}

func init() {
	f := recommendCmd.Flags()
	f.StringVar(&recommendFlags.catalogPath, "catalog", "", "tagged catalog file (default from config)")
	f.StringVar(&recommendFlags.gender, "gender", "", "gender filter (Men, Women, Unisex, Any)")
	f.StringVar(&recommendFlags.category, "category", "", `clothing type, "Any" or "Full Outfit"`)
	f.StringVar(&recommendFlags.color, "color", "", "color substring filter")
	f.StringVar(&recommendFlags.occasion, "occasion", "", "free-text occasion")
	f.StringVar(&recommendFlags.style, "style", "", "free-text style")
	f.StringVar(&recommendFlags.keywords, "keywords", "", "additional keywords")
	f.StringSliceVar(&recommendFlags.occasionTags, "occasion-tags", nil, "preferred occasion tags")
	f.StringSliceVar(&recommendFlags.styleTags, "style-tags", nil, "preferred style tags")
	f.Float64Var(&recommendFlags.maxPrice, "max-price", 0, "per-item price ceiling (defaults to --budget)")
	f.Float64Var(&recommendFlags.budget, "budget", 0, "budget shown to the model and checked for outfits (defaults to --max-price)")
	f.StringVarP(&recommendFlags.output, "output", "o", "json", "output format: json or yaml")
	rootCmd.AddCommand(recommendCmd)
}
