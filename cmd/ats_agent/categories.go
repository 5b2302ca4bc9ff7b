package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-analyzer/internal/types"
)

var categoriesRegistry string

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the configured job categories",
	RunE:  runCategories,
}

func init() {
	categoriesCmd.Flags().StringVar(&categoriesRegistry, "registry", "", "Path to a JSON registry of categories and company requirements")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	registry, err := loadRegistry(categoriesRegistry)
	if err != nil {
		return err
	}

	for _, name := range registry.CategoryNames() {
		cfg := registry.Category(name)
		required := len(cfg.RequiredKeywords)
		preferred := len(cfg.PreferredKeywords)
		if name == types.GeneralCategory {
			fmt.Printf("%s (fallback)\n", name)
			continue
		}
		fmt.Printf("%s (%d required, %d preferred keywords)\n", name, required, preferred)
	}
	return nil
}
