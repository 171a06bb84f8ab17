package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turnforge/tidepath"
	"github.com/turnforge/tidepath/terrain"
)

var (
	fpFrom string
	fpTo   string
	fpKind string
)

var findPathCmd = &cobra.Command{
	Use:   "find-path",
	Short: "Find a path between two tiles on the current fixture",
	Long: `Build the chosen fixture and run a water or rail query between --from and
--to, given as "x,y".

Examples:
  tidepathctl find-path --fixture coast --from 0,0 --to 15,0
  tidepathctl find-path --fixture ocean --kind rail --from 0,0 --to 31,31`,
	RunE: runFindPath,
}

func init() {
	findPathCmd.Flags().StringVar(&fpFrom, "from", "", "start tile, \"x,y\" (required)")
	findPathCmd.Flags().StringVar(&fpTo, "to", "", "goal tile, \"x,y\" (required)")
	findPathCmd.Flags().StringVar(&fpKind, "kind", "water", "pathfinder kind: water or rail")
	findPathCmd.MarkFlagRequired("from")
	findPathCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(findPathCmd)
}

func parseTile(g *terrain.Grid, s string) (terrain.Tile, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid tile %q, want \"x,y\"", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid tile %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("invalid tile %q: %w", s, err)
	}
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("tile %q out of bounds for a %dx%d fixture", s, g.Width(), g.Height())
	}
	return g.Ref(x, y), nil
}

func runFindPath(cmd *cobra.Command, args []string) error {
	g, err := buildFixture(currentFixture(), currentWidth(), currentHeight())
	if err != nil {
		return err
	}
	start, err := parseTile(g, fpFrom)
	if err != nil {
		return err
	}
	goal, err := parseTile(g, fpTo)
	if err != nil {
		return err
	}

	var (
		path []terrain.Tile
		ok   bool
	)
	switch fpKind {
	case "water":
		cfg := tidepath.DefaultConfig()
		cfg.ClusterSize = currentClusterSize()
		builder := tidepath.NewGraphBuilder(g, cfg)
		wp := tidepath.NewWaterPathfinder(g, builder, cfg, nil)
		path, ok = wp.FindPath([]terrain.Tile{start}, goal)
	case "rail":
		cfg := tidepath.DefaultConfig()
		rp := tidepath.NewRailPathfinder(g, cfg)
		path, ok = rp.FindPath([]terrain.Tile{start}, goal)
	default:
		return fmt.Errorf("unknown --kind %q (want water or rail)", fpKind)
	}

	formatter := NewOutputFormatter()
	if !ok {
		return formatter.Print("no path")
	}
	return formatter.Print(newPathResult(g, path))
}

// pathResult is JSON-friendly and also formats itself as text, so the same
// value serves both --json and the default output.
type pathResult struct {
	Length int      `json:"length"`
	Tiles  [][2]int `json:"tiles"`
}

func newPathResult(g *terrain.Grid, path []terrain.Tile) pathResult {
	tiles := make([][2]int, len(path))
	for i, t := range path {
		tiles[i] = [2]int{g.X(t), g.Y(t)}
	}
	return pathResult{Length: len(path), Tiles: tiles}
}

func (p pathResult) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("path (%d tiles):\n", p.Length))
	for _, xy := range p.Tiles {
		sb.WriteString(fmt.Sprintf("  (%d,%d)\n", xy[0], xy[1]))
	}
	return sb.String()
}
