// Package camera holds the first person viewer pose and its movement.
package camera

import (
	"math"

	"raycaster/internal/collision"
	"raycaster/internal/raycast"
)

// Camera is the first person viewer: a position in world units and a
// viewing angle in radians.
type Camera struct {
	Pos   raycast.Position
	Angle float64

	collision *collision.CollisionSystem
	radius    float64
}

// New creates a camera at pos. A nil collision system lets the camera
// pass through walls.
func New(pos raycast.Position, angle float64, cs *collision.CollisionSystem, radius float64) *Camera {
	c := &Camera{Pos: pos, collision: cs, radius: radius}
	c.Rotate(angle)
	return c
}

// GetForward returns the unit forward direction
func (c *Camera) GetForward() (float64, float64) {
	return math.Cos(c.Angle), math.Sin(c.Angle)
}

// GetRight returns the unit direction to the viewer's right
func (c *Camera) GetRight() (float64, float64) {
	return math.Cos(c.Angle + math.Pi/2), math.Sin(c.Angle + math.Pi/2)
}

// Rotate turns the camera by delta radians, keeping Angle in [0, 2π).
func (c *Camera) Rotate(delta float64) {
	c.Angle = math.Mod(c.Angle+delta, 2*math.Pi)
	if c.Angle < 0 {
		c.Angle += 2 * math.Pi
	}
}

// MoveForward moves along the view direction; negative dist moves back.
func (c *Camera) MoveForward(dist float64) {
	fx, fy := c.GetForward()
	c.move(fx*dist, fy*dist)
}

// Strafe moves sideways; positive dist moves right.
func (c *Camera) Strafe(dist float64) {
	rx, ry := c.GetRight()
	c.move(rx*dist, ry*dist)
}

func (c *Camera) move(dx, dy float64) {
	if c.collision == nil {
		c.Pos.X += dx
		c.Pos.Y += dy
		return
	}
	c.Pos = c.collision.Move(c.Pos, dx, dy, 2*c.radius)
}
