// Package raycast finds the first wall a ray strikes in a uniform tile grid.
//
// The traversal is a grid DDA: the ray advances one grid-line crossing at a
// time, always along whichever axis reaches its next crossing first, and the
// tile entered by each crossing is queried until a wall is found or the
// search range runs out.
package raycast

import (
	"image/color"
	"math"

	"raycaster/internal/mathutil"
)

// TileSize is the edge length of one grid tile in world units. Wall height
// projection uses the same constant.
const TileSize = 64.0

// MaxSearchRange caps any requested range so a traversal through an empty
// grid always terminates.
const MaxSearchRange = TileSize * 4096

// Position is a point in world units.
type Position struct {
	X, Y float64
}

// Wall identifies what occupies a tile.
type Wall struct {
	ID    int
	Color color.RGBA
}

// WorldGrid answers whether a tile holds a wall. Implementations must be
// side-effect free; coordinates may be negative or outside any map bounds.
type WorldGrid interface {
	WallAt(tileX, tileY int) (Wall, bool)
}

// Side names the kind of grid line crossed last before the hit.
type Side int

const (
	// SideNone marks a ray that started inside a wall tile.
	SideNone Side = iota
	// SideVertical is a crossing of a vertical grid line (x = k*TileSize),
	// i.e. a west or east wall face.
	SideVertical
	// SideHorizontal is a crossing of a horizontal grid line (y = k*TileSize),
	// i.e. a north or south wall face.
	SideHorizontal
)

func (s Side) String() string {
	switch s {
	case SideVertical:
		return "vertical"
	case SideHorizontal:
		return "horizontal"
	default:
		return "none"
	}
}

// Hit is the result of a cast. Distance is +Inf when nothing was found in range.
type Hit struct {
	Distance float64  // along the ray, not corrected for view angle
	Side     Side     // grid line crossed last
	WallX    float64  // position along the struck face, in [0,1)
	Wall     Wall     // what was struck
	TileX    int      // struck tile
	TileY    int      // struck tile
	Point    Position // world-space hit point
}

// NoHit is the sentinel returned when no wall lies within range.
var NoHit = Hit{Distance: math.Inf(1)}

// Ok reports whether the cast struck a wall.
func (h Hit) Ok() bool {
	return !math.IsInf(h.Distance, 1)
}

// TileOf returns the tile containing p.
func TileOf(p Position) (int, int) {
	return mathutil.FloorToInt(p.X / TileSize), mathutil.FloorToInt(p.Y / TileSize)
}

// Cast traces a ray from origin at angle (radians, clockwise from +X with Y
// pointing down) and returns the first wall within maxRange.
//
// A ray starting inside a wall tile hits it at distance 0. Exact corner
// crossings, where both axes reach their next grid line at the same
// distance, advance along Y first, so the horizontal face wins.
func Cast(origin Position, angle float64, grid WorldGrid, maxRange float64) Hit {
	return CastDir(origin, math.Cos(angle), math.Sin(angle), grid, maxRange)
}

// CastDir is Cast with a precomputed direction (dirX, dirY), which should be
// a unit vector for Distance to be in world units.
func CastDir(origin Position, dirX, dirY float64, grid WorldGrid, maxRange float64) Hit {
	if !finite(origin.X) || !finite(origin.Y) || !finite(dirX) || !finite(dirY) {
		return NoHit
	}
	if dirX == 0 && dirY == 0 {
		return NoHit
	}
	if !(maxRange >= 0) {
		return NoHit
	}
	if maxRange > MaxSearchRange {
		maxRange = MaxSearchRange
	}

	tileX, tileY := TileOf(origin)
	if wall, ok := grid.WallAt(tileX, tileY); ok {
		return Hit{Side: SideNone, Wall: wall, TileX: tileX, TileY: tileY, Point: origin}
	}

	stepX, nextX, deltaX := axisSetup(origin.X, tileX, dirX)
	stepY, nextY, deltaY := axisSetup(origin.Y, tileY, dirY)

	for {
		var dist float64
		var side Side
		if nextY <= nextX {
			dist = nextY
			nextY += deltaY
			tileY += stepY
			side = SideHorizontal
		} else {
			dist = nextX
			nextX += deltaX
			tileX += stepX
			side = SideVertical
		}

		if dist > maxRange {
			return NoHit
		}

		wall, ok := grid.WallAt(tileX, tileY)
		if !ok {
			continue
		}

		hitPoint := Position{X: origin.X + dist*dirX, Y: origin.Y + dist*dirY}
		along := hitPoint.X
		if side == SideVertical {
			along = hitPoint.Y
		}
		return Hit{
			Distance: dist,
			Side:     side,
			WallX:    fraction(along / TileSize),
			Wall:     wall,
			TileX:    tileX,
			TileY:    tileY,
			Point:    hitPoint,
		}
	}
}

// axisSetup returns the tile step sign, the ray distance to the first grid
// line crossed on this axis, and the distance between successive crossings.
// An axis the ray runs parallel to is never crossed: both distances are +Inf.
func axisSetup(origin float64, tile int, dir float64) (step int, next, delta float64) {
	if dir == 0 {
		return 0, math.Inf(1), math.Inf(1)
	}
	delta = math.Abs(TileSize / dir)
	if dir < 0 {
		return -1, (origin - float64(tile)*TileSize) / -dir, delta
	}
	return 1, (float64(tile+1)*TileSize - origin) / dir, delta
}

func fraction(v float64) float64 {
	f := v - math.Floor(v)
	if f >= 1 {
		f = 0
	}
	return f
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
