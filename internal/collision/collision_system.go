// Package collision keeps a moving viewer out of wall tiles.
package collision

import (
	"raycaster/internal/raycast"
)

// CollisionSystem checks bounding boxes against the walls of a grid
type CollisionSystem struct {
	grid raycast.WorldGrid
}

// NewCollisionSystem creates a collision system over grid
func NewCollisionSystem(grid raycast.WorldGrid) *CollisionSystem {
	return &CollisionSystem{grid: grid}
}

// CanOccupy reports whether the box overlaps no wall tile.
func (cs *CollisionSystem) CanOccupy(box *BoundingBox) bool {
	startTileX, startTileY, endTileX, endTileY := box.TileSpan()
	for tileY := startTileY; tileY <= endTileY; tileY++ {
		for tileX := startTileX; tileX <= endTileX; tileX++ {
			if _, wall := cs.grid.WallAt(tileX, tileY); wall {
				return false
			}
		}
	}
	return true
}

// Move slides a square body of the given size from pos by (dx, dy). Each
// axis is tried on its own, so a blocked diagonal step still glides along
// the wall.
func (cs *CollisionSystem) Move(pos raycast.Position, dx, dy, size float64) raycast.Position {
	box := NewBoundingBox(pos.X, pos.Y, size, size)

	box.MoveTo(pos.X+dx, pos.Y)
	if cs.CanOccupy(box) {
		pos.X += dx
	}
	box.MoveTo(pos.X, pos.Y+dy)
	if cs.CanOccupy(box) {
		pos.Y += dy
	}
	return pos
}
