package cli

import (
	"github.com/spf13/cobra"

	"github.com/viant/quadrec/catalog"
)

var (
	gardenZone  int
	gardenSun   string
	gardenWater string
	gardenJSON  bool
)

var gardenCmd = &cobra.Command{
	Use:   "garden",
	Short: "List items suited to a garden",
	Long:  `Lists items hardy in the garden zone that tolerate its sun exposure and water supply.`,
	Args:  cobra.NoArgs,
	RunE:  runGarden,
}

func init() {
	gardenCmd.Flags().IntVar(&gardenZone, "zone", 0, "hardiness zone (1-13)")
	gardenCmd.Flags().StringVar(&gardenSun, "sun", "", "sun exposure, e.g. \"full sun\"")
	gardenCmd.Flags().StringVar(&gardenWater, "water", "", "water supply, e.g. average")
	gardenCmd.Flags().BoolVar(&gardenJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(gardenCmd)
}

func runGarden(cmd *cobra.Command, _ []string) error {
	g := &catalog.Garden{Zone: gardenZone, SunExposure: gardenSun, WaterSupply: gardenWater}
	if err := g.Validate(); err != nil {
		return err
	}
	c, err := loadCatalog()
	if err != nil {
		return err
	}
	return outputItems(cmd, g.Suitable(catalog.NewSearch(c.Items())), gardenJSON)
}
