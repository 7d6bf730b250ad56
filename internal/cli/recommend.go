package cli

import (
	"github.com/spf13/cobra"
)

var (
	recommendK     int
	recommendExact bool
	recommendJSON  bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [name]",
	Short: "Recommend items similar to a named item",
	Long: `Builds the index from the catalog and lists items near the named item.
The name may be a primary name or an alias. Results come from the quadtree in
discovery order; --exact ranks by feature cosine similarity instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().IntVarP(&recommendK, "k", "k", 5, "number of recommendations")
	recommendCmd.Flags().BoolVar(&recommendExact, "exact", false, "rank by exact feature similarity")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(recommendCmd)
}

type recommendation struct {
	Query      string          `json:"query"`
	Method     string          `json:"method"`
	Coordinate []float32       `json:"coordinate,omitempty"`
	Results    []string        `json:"results"`
	Items      []recommendItem `json:"items"`
}

type recommendItem struct {
	Name       string    `json:"name"`
	MinZone    int       `json:"minZone"`
	MaxZone    int       `json:"maxZone"`
	Coordinate []float32 `json:"coordinate,omitempty"`
}

func runRecommend(cmd *cobra.Command, args []string) error {
	sess, err := buildService(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	out := recommendation{Query: args[0], Method: "quadtree"}
	if recommendExact {
		out.Method = "exact"
		out.Results, err = sess.srv.Exact(args[0], recommendK)
	} else {
		out.Results, err = sess.srv.Recommend(args[0], recommendK)
	}
	if err != nil {
		return err
	}
	if out.Results == nil {
		out.Results = []string{}
	}
	out.Coordinate, _ = sess.srv.Coordinate(args[0])
	out.Items = make([]recommendItem, 0, len(out.Results))
	for _, label := range out.Results {
		entry := recommendItem{Name: label}
		if item, ok := sess.srv.Item(label); ok {
			entry.MinZone, entry.MaxZone = item.MinZone, item.MaxZone
		}
		entry.Coordinate, _ = sess.srv.Coordinate(label)
		out.Items = append(out.Items, entry)
	}
	if recommendJSON {
		return outputJSON(cmd, out)
	}
	if len(out.Results) == 0 {
		cmd.Println("No recommendations found.")
		return nil
	}
	cmd.Printf("Items similar to %s (%s):\n", args[0], out.Method)
	for i, entry := range out.Items {
		cmd.Printf("  [%d] %s  zones %d-%d", i+1, entry.Name, entry.MinZone, entry.MaxZone)
		if len(entry.Coordinate) == 2 {
			cmd.Printf("  at (%.2f, %.2f)", entry.Coordinate[0], entry.Coordinate[1])
		}
		cmd.Println()
	}
	return nil
}
