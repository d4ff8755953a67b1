// Package raster draws integer Bresenham lines into anything that can plot a pixel.
package raster

import (
	"image/color"
	"math"

	"raycaster/internal/mathutil"
	"raycaster/internal/palette"
)

// Plotter is the pixel write path. *framebuffer.Framebuffer satisfies it.
type Plotter interface {
	Plot(x, y int, c color.RGBA) bool
}

// Point is an integer screen coordinate, X right and Y down.
type Point struct {
	X, Y int
}

// LineSpec is either a TwoPoint or an OriginAngleLength segment.
type LineSpec interface {
	Endpoints() (Point, Point)
}

// TwoPoint is a segment between two screen points.
type TwoPoint struct {
	A, B Point
}

// Endpoints returns the segment unchanged.
func (s TwoPoint) Endpoints() (Point, Point) {
	return s.A, s.B
}

// OriginAngleLength is a segment leaving Origin at Angle (radians,
// clockwise on screen from +X) for Length pixels.
type OriginAngleLength struct {
	Origin Point
	Angle  float64
	Length float64
}

// Endpoints converts the polar form into two points, flooring the far end.
func (s OriginAngleLength) Endpoints() (Point, Point) {
	end := Point{
		X: mathutil.FloorToInt(float64(s.Origin.X) + s.Length*math.Cos(s.Angle)),
		Y: mathutil.FloorToInt(float64(s.Origin.Y) + s.Length*math.Sin(s.Angle)),
	}
	return s.Origin, end
}

// Draw rasterizes spec in color c.
func Draw(p Plotter, spec LineSpec, c color.RGBA) {
	a, b := spec.Endpoints()
	DrawLine(p, a, b, c)
}

// Stroke rasterizes spec in palette.Default.
func Stroke(p Plotter, spec LineSpec) {
	Draw(p, spec, palette.Default)
}

// DrawLine plots every pixel of the segment a-b, both endpoints included.
func DrawLine(p Plotter, a, b Point, c color.RGBA) {
	Walk(a, b, func(x, y int) {
		p.Plot(x, y, c)
	})
}

// DrawLineAngle is DrawLine for the origin/angle/length form.
func DrawLineAngle(p Plotter, origin Point, angle, length float64, c color.RGBA) {
	Draw(p, OriginAngleLength{Origin: origin, Angle: angle, Length: length}, c)
}

// LinePoints returns the pixels of segment a-b in drawing order.
func LinePoints(a, b Point) []Point {
	n := mathutil.IntAbs(b.X-a.X)
	if dy := mathutil.IntAbs(b.Y - a.Y); dy > n {
		n = dy
	}
	pts := make([]Point, 0, n+1)
	Walk(a, b, func(x, y int) {
		pts = append(pts, Point{X: x, Y: y})
	})
	return pts
}

// Walk visits the pixels of segment a-b using only integer arithmetic.
//
// The endpoints are put in a canonical order (smaller major coordinate first,
// ties broken on the minor coordinate) so the major axis always steps +1 and
// only the minor step sign varies. That folds the eight octants into four and
// makes the pixel set of (a,b) identical to that of (b,a).
func Walk(a, b Point, visit func(x, y int)) {
	steep := mathutil.IntAbs(b.Y-a.Y) > mathutil.IntAbs(b.X-a.X)

	// u is the major axis, v the minor one.
	u0, v0, u1, v1 := a.X, a.Y, b.X, b.Y
	if steep {
		u0, v0, u1, v1 = a.Y, a.X, b.Y, b.X
	}
	if u0 > u1 || (u0 == u1 && v0 > v1) {
		u0, v0, u1, v1 = u1, v1, u0, v0
	}

	du := u1 - u0
	dv := mathutil.IntAbs(v1 - v0)
	vStep := mathutil.IntSign(v1 - v0)

	e := 2*dv - du
	v := v0
	for u := u0; u <= u1; u++ {
		if steep {
			visit(v, u)
		} else {
			visit(u, v)
		}
		if e >= 0 {
			v += vStep
			e += 2*dv - 2*du
		} else {
			e += 2 * dv
		}
	}
}
