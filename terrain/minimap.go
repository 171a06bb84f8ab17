package terrain

// Downscale is the fixed minimap downscale factor. spec.md §4.1 is explicit
// that it is exactly 2, never a tunable.
const Downscale = 2

// Minimap is a half-linear-resolution View derived from a full-resolution
// base View. A minimap tile is water iff any of its four full-resolution
// children is water (spec.md §4.1, §2 component 1).
//
// Minimap precomputes its water classification once at construction — it is
// read-only for the lifetime of the map, same as the base View and the
// gateway graph built over it.
type Minimap struct {
	base          View
	width, height int
	water         []bool
}

// NewMinimap builds a minimap over base. base's dimensions need not be even;
// a trailing partial 2x2 block is still folded into one minimap tile.
func NewMinimap(base View) *Minimap {
	w := (base.Width() + Downscale - 1) / Downscale
	h := (base.Height() + Downscale - 1) / Downscale
	m := &Minimap{base: base, width: w, height: h, water: make([]bool, w*h)}
	for my := 0; my < h; my++ {
		for mx := 0; mx < w; mx++ {
			m.water[my*w+mx] = m.anyChildWater(mx, my)
		}
	}
	return m
}

func (m *Minimap) anyChildWater(mx, my int) bool {
	bx, by := mx*Downscale, my*Downscale
	for dy := 0; dy < Downscale; dy++ {
		for dx := 0; dx < Downscale; dx++ {
			x, y := bx+dx, by+dy
			if !m.base.InBounds(x, y) {
				continue
			}
			if m.base.IsWater(m.base.Ref(x, y)) {
				return true
			}
		}
	}
	return false
}

func (m *Minimap) Width() int  { return m.width }
func (m *Minimap) Height() int { return m.height }

func (m *Minimap) Ref(x, y int) Tile { return Tile(y*m.width + x) }
func (m *Minimap) X(t Tile) int      { return int(t) % m.width }
func (m *Minimap) Y(t Tile) int      { return int(t) / m.width }

func (m *Minimap) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m *Minimap) IsWater(t Tile) bool { return m.water[t] }
func (m *Minimap) IsLand(t Tile) bool  { return !m.water[t] }

// IsShore on the minimap mirrors the base grid's symmetric definition: any
// tile adjacent to one of the opposite land/water class.
func (m *Minimap) IsShore(t Tile) bool {
	x, y := m.X(t), m.Y(t)
	here := m.IsLand(t)
	deltas := [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for _, d := range deltas {
		nx, ny := x+d[0], y+d[1]
		if m.InBounds(nx, ny) && m.IsLand(m.Ref(nx, ny)) != here {
			return true
		}
	}
	return false
}

func (m *Minimap) Neighbours(t Tile, dst []Tile) []Tile {
	x, y := m.X(t), m.Y(t)
	if m.InBounds(x, y-1) {
		dst = append(dst, t-Tile(m.width))
	}
	if m.InBounds(x, y+1) {
		dst = append(dst, t+Tile(m.width))
	}
	if m.InBounds(x-1, y) {
		dst = append(dst, t-1)
	}
	if m.InBounds(x+1, y) {
		dst = append(dst, t+1)
	}
	return dst
}

func (m *Minimap) ManhattanDist(a, b Tile) int { return ManhattanDist(m.width, a, b) }

// ToFull maps a minimap cell to its top-left full-resolution cell.
func (m *Minimap) ToFull(c Cell) Cell { return Cell{X: c.X * Downscale, Y: c.Y * Downscale} }

// ToMinimap floor-divides a full-resolution cell down to its minimap cell.
func ToMinimap(c Cell) Cell { return Cell{X: c.X / Downscale, Y: c.Y / Downscale} }
