package hierarchical

import (
	"testing"

	"github.com/turnforge/tidepath/astar"
	"github.com/turnforge/tidepath/gateway"
	"github.com/turnforge/tidepath/terrain"
)

func buildAllWater(fullW, fullH, clusterSize int) (*terrain.Minimap, *gateway.Graph, *astar.Bounded) {
	g := terrain.NewBlankWaterGrid(fullW, fullH)
	mini := terrain.NewMinimap(g)
	boundedForBuild := astar.NewBounded(CapacityFor3x3(clusterSize), astar.DefaultHeuristicWeight)
	graph := gateway.Build(mini, clusterSize, boundedForBuild, true)
	bounded := astar.NewBounded(CapacityFor3x3(clusterSize), astar.DefaultHeuristicWeight)
	return mini, graph, bounded
}

func TestShortDistanceBypassHandlesNearbyEndpoints(t *testing.T) {
	mini, graph, bounded := buildAllWater(16, 16, 4)
	cfg := Config{ClusterSize: 4, HeuristicWeight: astar.DefaultHeuristicWeight}
	p := New(mini, graph, bounded, cfg, nil)

	start := mini.Ref(0, 0)
	goal := mini.Ref(2, 0)
	path, ok := p.FindPath([]terrain.Tile{start}, goal)
	if !ok {
		t.Fatal("expected a short-distance path")
	}
	if path[0] != start || path[len(path)-1] != goal {
		t.Fatalf("path endpoints = %v..%v; want %v..%v", path[0], path[len(path)-1], start, goal)
	}
}

func TestHierarchicalFindsPathAcrossManyClusters(t *testing.T) {
	mini, graph, bounded := buildAllWater(64, 64, 4)
	cfg := Config{ClusterSize: 4, HeuristicWeight: astar.DefaultHeuristicWeight}
	p := New(mini, graph, bounded, cfg, nil)

	start := mini.Ref(0, 0)
	goal := mini.Ref(31, 31)
	path, ok := p.FindPath([]terrain.Tile{start}, goal)
	if !ok {
		t.Fatal("expected a long-haul path across an all-water minimap")
	}
	if path[0] != start {
		t.Fatalf("path[0] = %v; want %v", path[0], start)
	}
	if path[len(path)-1] != goal {
		t.Fatalf("path[last] = %v; want %v", path[len(path)-1], goal)
	}
	for i := 1; i < len(path); i++ {
		if mini.ManhattanDist(path[i-1], path[i]) != 1 {
			t.Fatalf("non-adjacent step at %d: %v -> %v", i, path[i-1], path[i])
		}
	}
}

func TestHierarchicalNoPathWithoutGateways(t *testing.T) {
	g := terrain.NewGridBuilder().Rows(`
LLLLLLLL
LLLLLLLL
LLLLLLLL
LLLLLLLL
`).Build()
	mini := terrain.NewMinimap(g)
	clusterSize := 2
	boundedForBuild := astar.NewBounded(CapacityFor3x3(clusterSize), astar.DefaultHeuristicWeight)
	graph := gateway.Build(mini, clusterSize, boundedForBuild, false)
	bounded := astar.NewBounded(CapacityFor3x3(clusterSize), astar.DefaultHeuristicWeight)

	cfg := Config{ClusterSize: clusterSize, ShortDistanceBypassThreshold: 0, HeuristicWeight: astar.DefaultHeuristicWeight}
	p := New(mini, graph, bounded, cfg, nil)

	_, ok := p.FindPath([]terrain.Tile{mini.Ref(0, 0)}, mini.Ref(3, 1))
	if ok {
		t.Fatal("expected no path on an all-land minimap with no gateways")
	}
}
