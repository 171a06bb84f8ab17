package tidepath

import (
	"github.com/turnforge/tidepath/projectile"
	"github.com/turnforge/tidepath/terrain"
)

// Air and Parabola are re-exported under the facade's naming convention
// alongside WaterPathfinder/RailPathfinder/StationsPathfinder — spec.md
// §6's "analogous Air, Parabola entry points". The implementations
// themselves live in package projectile; there is nothing for this
// package to add beyond the name.
type (
	Air      = projectile.Air
	Parabola = projectile.Parabola
)

// NewAir returns a deterministic pseudo-random stepper (spec.md §4.10).
func NewAir() *Air { return projectile.NewAir() }

// NewParabola returns a cubic-Bezier arc stepper from -> to over view,
// discretised in steps of increment per unit speed (spec.md §4.10).
func NewParabola(view terrain.View, from, to terrain.Tile, increment float64) *Parabola {
	return projectile.NewParabola(view, from, to, increment)
}
