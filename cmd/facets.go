package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/style-advisor/internal/catalog"
)

var facetsFlags struct {
	catalogPath string
	output      string
}

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "List the genders, categories and tags present in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := firstNonEmpty(facetsFlags.catalogPath, cfg.Catalog.Path)
		cat, err := catalog.Load(path)
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), cat.Facets(), facetsFlags.output)
	},
}

func init() {
	facetsCmd.Flags().StringVar(&facetsFlags.catalogPath, "catalog", "", "tagged catalog file (default from config)")
	facetsCmd.Flags().StringVarP(&facetsFlags.output, "output", "o", "json", "output format: json or yaml")
	rootCmd.AddCommand(facetsCmd)
}
