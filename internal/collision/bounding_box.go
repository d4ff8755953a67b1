package collision

import (
	"math"

	"raycaster/internal/mathutil"
	"raycaster/internal/raycast"
)

// BoundingBox is an axis-aligned square body centred on the viewer.
type BoundingBox struct {
	Center raycast.Position
	Width  float64
	Height float64
}

// NewBoundingBox creates a box centred at (x, y).
func NewBoundingBox(x, y, width, height float64) *BoundingBox {
	return &BoundingBox{Center: raycast.Position{X: x, Y: y}, Width: width, Height: height}
}

// GetBounds returns the min/max coordinates of the bounding box
func (bb *BoundingBox) GetBounds() (minX, minY, maxX, maxY float64) {
	halfWidth := bb.Width / 2
	halfHeight := bb.Height / 2
	return bb.Center.X - halfWidth, bb.Center.Y - halfHeight, bb.Center.X + halfWidth, bb.Center.Y + halfHeight
}

// MoveTo recentres the box.
func (bb *BoundingBox) MoveTo(x, y float64) {
	bb.Center = raycast.Position{X: x, Y: y}
}

// TileSpan returns the inclusive range of tiles the box overlaps. An edge
// lying exactly on a tile boundary does not reach into the next tile.
func (bb *BoundingBox) TileSpan() (x0, y0, x1, y1 int) {
	minX, minY, maxX, maxY := bb.GetBounds()
	x0 = mathutil.FloorToInt(minX / raycast.TileSize)
	y0 = mathutil.FloorToInt(minY / raycast.TileSize)
	x1 = int(math.Ceil(maxX/raycast.TileSize)) - 1
	y1 = int(math.Ceil(maxY/raycast.TileSize)) - 1
	return x0, y0, x1, y1
}
