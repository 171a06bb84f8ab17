package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turnforge/tidepath"
	"github.com/turnforge/tidepath/component"
)

var (
	compX int
	compY int
)

var componentOfCmd = &cobra.Command{
	Use:   "component-of",
	Short: "Report the water-component id of a tile (minimap resolution)",
	Long: `Builds the minimap's water-component labels for the current fixture and
reports the component id of the minimap tile covering (--x, --y). Land
tiles always report component 0.`,
	RunE: runComponentOf,
}

func init() {
	componentOfCmd.Flags().IntVar(&compX, "x", 0, "full-resolution x coordinate")
	componentOfCmd.Flags().IntVar(&compY, "y", 0, "full-resolution y coordinate")
	rootCmd.AddCommand(componentOfCmd)
}

type componentResult struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	ComponentID uint32 `json:"component_id"`
	IsWater     bool   `json:"is_water"`
}

func (r componentResult) String() string {
	if !r.IsWater {
		return fmt.Sprintf("(%d,%d) is land (component 0)", r.X, r.Y)
	}
	return fmt.Sprintf("(%d,%d) is water, component %d", r.X, r.Y, r.ComponentID)
}

func runComponentOf(cmd *cobra.Command, args []string) error {
	g, err := buildFixture(currentFixture(), currentWidth(), currentHeight())
	if err != nil {
		return err
	}
	if !g.InBounds(compX, compY) {
		return fmt.Errorf("(%d,%d) out of bounds for a %dx%d fixture", compX, compY, g.Width(), g.Height())
	}

	cfg := tidepath.DefaultConfig()
	cfg.ClusterSize = currentClusterSize()
	builder := tidepath.NewGraphBuilder(g, cfg)
	mini := builder.Minimap()
	labels := builder.Labels()

	miniTile := mini.Ref(compX/2, compY/2)
	id := labels.ComponentID(miniTile)

	return NewOutputFormatter().Print(componentResult{
		X: compX, Y: compY,
		ComponentID: uint32(id),
		IsWater:     id != component.ID(0),
	})
}
