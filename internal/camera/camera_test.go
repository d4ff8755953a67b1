package camera

import (
	"math"
	"strings"
	"testing"

	"raycaster/internal/collision"
	"raycaster/internal/raycast"
	"raycaster/internal/world"
)

const testTiles = `tiles:
  stone:
    name: "Stone Wall"
    letter: "#"
    solid: true
    color: "#808080"
`

func newTestGrid(t *testing.T) *world.Grid {
	t.Helper()
	tm := world.NewTileManager()
	if err := tm.ParseTileConfig([]byte(testTiles)); err != nil {
		t.Fatalf("parse tiles: %v", err)
	}
	grid, err := world.NewMapLoader(tm).ParseMap(strings.NewReader("#####\n#+..#\n#...#\n#...#\n#####\n"))
	if err != nil {
		t.Fatalf("parse map: %v", err)
	}
	return grid
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCamera_Rotate(t *testing.T) {
	c := New(raycast.Position{}, 0, nil, 0)
	c.Rotate(-math.Pi / 2)
	if !near(c.Angle, 3*math.Pi/2) {
		t.Errorf("expected angle wrapped to 3π/2, got %f", c.Angle)
	}
	c.Rotate(math.Pi)
	if !near(c.Angle, math.Pi/2) {
		t.Errorf("expected π/2, got %f", c.Angle)
	}
	if c := New(raycast.Position{}, 5*math.Pi, nil, 0); !near(c.Angle, math.Pi) {
		t.Errorf("expected start angle normalized to π, got %f", c.Angle)
	}
}

func TestCamera_MoveFree(t *testing.T) {
	c := New(raycast.Position{X: 10, Y: 10}, 0, nil, 0)
	c.MoveForward(5)
	if !near(c.Pos.X, 15) || !near(c.Pos.Y, 10) {
		t.Errorf("forward: got %v", c.Pos)
	}
	// Right of east is south, +y.
	c.Strafe(4)
	if !near(c.Pos.X, 15) || !near(c.Pos.Y, 14) {
		t.Errorf("strafe: got %v", c.Pos)
	}
	c.MoveForward(-15)
	if !near(c.Pos.X, 0) {
		t.Errorf("back: got %v", c.Pos)
	}
}

func TestCamera_BlockedByWall(t *testing.T) {
	grid := newTestGrid(t)
	c := New(raycast.Position{X: 96, Y: 96}, math.Pi, collision.NewCollisionSystem(grid), 12)

	// West wall face is at x=64; the body is 24 wide.
	for i := 0; i < 20; i++ {
		c.MoveForward(3)
	}
	if c.Pos.X < 64+12 {
		t.Errorf("camera entered the wall: %v", c.Pos)
	}
	if c.Pos.X >= 96 {
		t.Errorf("camera did not move toward the wall: %v", c.Pos)
	}
}

func TestCamera_SlidesAlongWall(t *testing.T) {
	grid := newTestGrid(t)
	// Pressed against the north wall, heading north-east.
	c := New(raycast.Position{X: 96, Y: 77}, -math.Pi/4, collision.NewCollisionSystem(grid), 12)
	c.MoveForward(10)
	if c.Pos.X <= 96 {
		t.Errorf("expected to slide east, got %v", c.Pos)
	}
	if c.Pos.Y < 76 {
		t.Errorf("expected y held by the wall, got %v", c.Pos)
	}
}
