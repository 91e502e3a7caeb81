package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/style-advisor/internal/catalog"
	"github.com/sells-group/style-advisor/internal/metrics"
	"github.com/sells-group/style-advisor/internal/model"
	"github.com/sells-group/style-advisor/internal/resilience"
	"github.com/sells-group/style-advisor/internal/tagging"
)

var tagFlags struct {
	in          string
	out         string
	maxProducts int
}

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Add occasion and style tags to a prepared catalog",
	Long:  "Asks the model for occasion and style tags one product at a time, pausing between batches, and writes the tagged catalog once the run completes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if tagFlags.maxProducts > 0 {
			cfg.Tagging.MaxProducts = tagFlags.maxProducts
		}
		if err := cfg.Validate("tag"); err != nil {
			return err
		}

		in := firstNonEmpty(tagFlags.in, cfg.Tagging.Input)
		out := firstNonEmpty(tagFlags.out, cfg.Tagging.Output)

		gen, err := newGenerator(ctx, cfg, metrics.New(nil))
		if err != nil {
			return err
		}
		t := cfg.Tagging
		tagger := tagging.New(gen, tagging.Config{
			MaxProducts:       t.MaxProducts,
			BatchSize:         t.BatchSize,
			BatchDelay:        time.Duration(t.BatchDelaySecs) * time.Second,
			RequestsPerMinute: t.RequestsPerMinute,
			Retry:             resilience.FromAttempts(t.RetryAttempts, time.Duration(t.RetryBackoffSecs)*time.Second),
		})

		return runTag(ctx, tagger, in, out)
	},
}

// productTagger is the part of tagging.Tagger the command drives.
type productTagger interface {
	Run(ctx context.Context, products []model.Product) ([]model.Product, tagging.Stats, error)
}

// runTag loads in, tags it and writes out. Nothing is written when the run
// is cancelled.
func runTag(ctx context.Context, tagger productTagger, in, out string) error {
	cat, err := catalog.Load(in)
	if err != nil {
		return err
	}

	tagged, stats, err := tagger.Run(ctx, cat.Products())
	if err != nil {
		return err
	}

	if err := catalog.Save(out, tagged); err != nil {
		return err
	}
	zap.L().Info("tagged catalog written",
		zap.String("path", out),
		zap.Int("products", len(tagged)),
		zap.Int("tagged", stats.Tagged),
		zap.Int("failed", stats.Failed),
	)
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	tagCmd.Flags().StringVar(&tagFlags.in, "in", "", "untagged catalog file (default from config)")
	tagCmd.Flags().StringVar(&tagFlags.out, "out", "", "tagged catalog output file (default from config)")
	tagCmd.Flags().IntVar(&tagFlags.maxProducts, "max-products", 0, "products to tag (default from config)")
	rootCmd.AddCommand(tagCmd)
}
