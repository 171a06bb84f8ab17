package cmd

import (
	"fmt"

	"github.com/turnforge/tidepath/terrain"
)

// buildFixture constructs one of a handful of named synthetic terrains.
// tidepathctl has no map loader of its own: spec.md places the terrain
// bitmap loader and its on-disk formats out of scope, as an external
// collaborator this library only consumes the contract of.
func buildFixture(name string, width, height int) (*terrain.Grid, error) {
	switch name {
	case "ocean":
		return terrain.NewBlankWaterGrid(width, height), nil
	case "coast":
		return buildCoast(width, height), nil
	case "archipelago":
		return buildArchipelago(width, height), nil
	default:
		return nil, fmt.Errorf("unknown fixture %q (want ocean, coast, or archipelago)", name)
	}
}

// buildCoast splits the map into a land half and a water half along a
// vertical line at 7/16 of the width, the shape of spec.md §8's
// ocean_and_land fixture.
func buildCoast(width, height int) *terrain.Grid {
	g := terrain.NewBlankWaterGrid(width, height)
	landWidth := (width * 7) / 16
	for y := 0; y < height; y++ {
		for x := 0; x < landWidth; x++ {
			g.SetLand(x, y, true)
		}
	}
	return g
}

// buildArchipelago drops a regular lattice of square land blocks into an
// otherwise open ocean, producing several gateway-bearing cluster
// boundaries for inspect-gateways to report on.
func buildArchipelago(width, height int) *terrain.Grid {
	g := terrain.NewBlankWaterGrid(width, height)
	const (
		blockSize = 3
		period    = 8
	)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x%period < blockSize && y%period < blockSize {
				g.SetLand(x, y, true)
			}
		}
	}
	return g
}
