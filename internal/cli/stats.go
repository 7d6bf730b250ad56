package cli

import (
	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Build the index and report its statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	sess, err := buildService(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close()

	stats, err := sess.srv.Stats()
	if err != nil {
		return err
	}
	if statsJSON {
		return outputJSON(cmd, stats)
	}
	cmd.Printf("Items:      %d\n", stats.Items)
	cmd.Printf("Attributes: %d\n", stats.Attributes)
	cmd.Printf("Inserted:   %d of %d (%d skipped)\n", stats.Stored, stats.Expected, stats.Skipped)
	cmd.Printf("Tree nodes: %d\n", stats.Nodes)
	cmd.Printf("Bounds:     [%.2f, %.2f] x [%.2f, %.2f]\n",
		stats.Bounds.Min[0], stats.Bounds.Max[0], stats.Bounds.Min[1], stats.Bounds.Max[1])
	return nil
}
