package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turnforge/tidepath"
)

var inspectGatewaysCmd = &cobra.Command{
	Use:   "inspect-gateways",
	Short: "Build the gateway graph for the current fixture and report its shape",
	Long: `Builds the minimap, water-component labels, and gateway graph for the
chosen fixture, then reports cluster and node/edge counts — useful for
sanity-checking a cluster-size choice against a given map.`,
	RunE: runInspectGateways,
}

func init() {
	rootCmd.AddCommand(inspectGatewaysCmd)
}

type gatewaySummary struct {
	Fixture          string `json:"fixture"`
	FullWidth        int    `json:"full_width"`
	FullHeight       int    `json:"full_height"`
	MinimapWidth     int    `json:"minimap_width"`
	MinimapHeight    int    `json:"minimap_height"`
	ClusterSize      int    `json:"cluster_size"`
	WaterComponents  int    `json:"water_components"`
	GatewayNodeCount int    `json:"gateway_node_count"`
	EdgeCount        int    `json:"edge_count"`
}

func (s gatewaySummary) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("fixture:           %s (%dx%d)\n", s.Fixture, s.FullWidth, s.FullHeight))
	sb.WriteString(fmt.Sprintf("minimap:           %dx%d\n", s.MinimapWidth, s.MinimapHeight))
	sb.WriteString(fmt.Sprintf("cluster size:      %d\n", s.ClusterSize))
	sb.WriteString(fmt.Sprintf("water components:  %d\n", s.WaterComponents))
	sb.WriteString(fmt.Sprintf("gateway nodes:     %d\n", s.GatewayNodeCount))
	sb.WriteString(fmt.Sprintf("abstract edges:    %d\n", s.EdgeCount))
	return sb.String()
}

func runInspectGateways(cmd *cobra.Command, args []string) error {
	g, err := buildFixture(currentFixture(), currentWidth(), currentHeight())
	if err != nil {
		return err
	}

	cfg := tidepath.DefaultConfig()
	cfg.ClusterSize = currentClusterSize()
	builder := tidepath.NewGraphBuilder(g, cfg)

	mini := builder.Minimap()
	labels := builder.Labels()
	graph := builder.Graph()

	summary := gatewaySummary{
		Fixture:          currentFixture(),
		FullWidth:        g.Width(),
		FullHeight:       g.Height(),
		MinimapWidth:     mini.Width(),
		MinimapHeight:    mini.Height(),
		ClusterSize:      cfg.ClusterSize,
		WaterComponents:  int(labels.Count()),
		GatewayNodeCount: graph.NumNodes(),
		EdgeCount:        graph.NumEdges(),
	}

	return NewOutputFormatter().Print(summary)
}
