package world

import (
	"raycaster/internal/raycast"
)

// Grid is a rectangular tile map. It implements raycast.WorldGrid; every
// tile outside the map is open floor.
type Grid struct {
	Width  int
	Height int
	Tiles  []TileType // row-major
	StartX int       // start tile, -1 when the map has none
	StartY int

	tiles *TileManager
}

// NewGrid creates an empty width x height grid.
func NewGrid(width, height int, tm *TileManager) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  make([]TileType, width*height),
		StartX: -1,
		StartY: -1,
		tiles:  tm,
	}
}

// InBounds reports whether the tile lies inside the map.
func (g *Grid) InBounds(tileX, tileY int) bool {
	return tileX >= 0 && tileY >= 0 && tileX < g.Width && tileY < g.Height
}

// TileAt returns the tile type at a tile coordinate.
func (g *Grid) TileAt(tileX, tileY int) TileType {
	if !g.InBounds(tileX, tileY) {
		return TileEmpty
	}
	return g.Tiles[tileY*g.Width+tileX]
}

// SetTile changes one tile; out-of-range writes are ignored.
func (g *Grid) SetTile(tileX, tileY int, t TileType) {
	if g.InBounds(tileX, tileY) {
		g.Tiles[tileY*g.Width+tileX] = t
	}
}

// WallAt implements raycast.WorldGrid. A grid without a tile manager has
// no walls.
func (g *Grid) WallAt(tileX, tileY int) (raycast.Wall, bool) {
	t := g.TileAt(tileX, tileY)
	if t == TileEmpty || g.tiles == nil || !g.tiles.IsSolid(t) {
		return raycast.Wall{}, false
	}
	return raycast.Wall{ID: int(t), Color: g.tiles.GetWallColor(t)}, true
}

// IsSolidAt reports whether the world-space point lies in a wall tile.
func (g *Grid) IsSolidAt(pos raycast.Position) bool {
	_, solid := g.WallAt(raycast.TileOf(pos))
	return solid
}

// StartPosition returns the centre of the start tile, or of the first open
// tile when the map marks none.
func (g *Grid) StartPosition() (raycast.Position, bool) {
	if g.InBounds(g.StartX, g.StartY) {
		return tileCenter(g.StartX, g.StartY), true
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if _, solid := g.WallAt(x, y); !solid {
				return tileCenter(x, y), true
			}
		}
	}
	return raycast.Position{}, false
}

func tileCenter(tileX, tileY int) raycast.Position {
	return raycast.Position{
		X: (float64(tileX) + 0.5) * raycast.TileSize,
		Y: (float64(tileY) + 0.5) * raycast.TileSize,
	}
}
