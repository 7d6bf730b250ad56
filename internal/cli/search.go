package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viant/quadrec/catalog"
)

var (
	searchName       string
	searchZone       int
	searchCategories []string
	searchJSON       bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the catalog by name, zone or attributes",
	Long: `Looks items up by primary name or alias, by hardiness zone, or by one or
more Category=value attribute filters, which are intersected.`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchName, "name", "", "primary name or alias")
	searchCmd.Flags().IntVar(&searchZone, "zone", 0, "hardiness zone")
	searchCmd.Flags().StringArrayVar(&searchCategories, "category", nil, "Category=value filter, repeatable")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}
	s := catalog.NewSearch(c.Items())

	switch {
	case searchName != "":
		item, ok := s.ByName(searchName)
		if !ok {
			return outputItems(cmd, nil, searchJSON)
		}
		return outputItems(cmd, []*catalog.Item{item}, searchJSON)
	case len(searchCategories) > 0:
		criteria, err := parseCriteria(searchCategories)
		if err != nil {
			return err
		}
		items := s.ByCategories(criteria)
		if searchZone > 0 {
			items = filterZone(items, searchZone)
		}
		return outputItems(cmd, items, searchJSON)
	case searchZone > 0:
		return outputItems(cmd, s.ByZone(searchZone), searchJSON)
	}
	return errors.New("one of --name, --zone or --category is required")
}

func parseCriteria(raw []string) (map[catalog.Category]string, error) {
	criteria := make(map[catalog.Category]string, len(raw))
	for _, r := range raw {
		key, value, ok := strings.Cut(r, "=")
		if !ok || strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("invalid --category %q, want Category=value", r)
		}
		category, err := catalog.ParseCategory(key)
		if err != nil {
			return nil, err
		}
		criteria[category] = strings.TrimSpace(value)
	}
	return criteria, nil
}

func filterZone(items []*catalog.Item, zone int) []*catalog.Item {
	var out []*catalog.Item
	for _, item := range items {
		if item.InZone(zone) {
			out = append(out, item)
		}
	}
	return out
}
