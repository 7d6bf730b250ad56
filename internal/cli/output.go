package cli

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/viant/quadrec/catalog"
)

func outputJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputItems(cmd *cobra.Command, items []*catalog.Item, asJSON bool) error {
	if asJSON {
		if items == nil {
			items = []*catalog.Item{}
		}
		return outputJSON(cmd, items)
	}
	if len(items) == 0 {
		cmd.Println("No items found.")
		return nil
	}
	for i, item := range items {
		cmd.Printf("  [%d] %s", i+1, item.Name)
		if len(item.Aliases) > 0 {
			cmd.Printf(" (%s)", strings.Join(item.Aliases, "; "))
		}
		cmd.Printf("  zones %d-%d\n", item.MinZone, item.MaxZone)
	}
	return nil
}
