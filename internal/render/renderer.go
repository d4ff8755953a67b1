package render

import (
	"image/color"
	"math"

	"raycaster/internal/framebuffer"
	"raycaster/internal/mathutil"
	"raycaster/internal/palette"
	"raycaster/internal/raster"
	"raycaster/internal/raycast"
)

// Projection constants.
const (
	DefaultFOV         = 1.0              // radians
	DefaultPlaneHeight = 200.0            // projection plane height in world units
	WallHeight         = raycast.TileSize // walls are exactly one tile tall
	DefaultMaxRange    = raycast.TileSize * 64
	sideShade          = 0.25 // darkening applied to horizontal faces
)

// DebugOptions configures the ray overlay.
type DebugOptions struct {
	Enabled bool
	Anchor  raster.Point   // screen point every ray is drawn from
	Scale   float64        // screen pixels per world unit
	Color   color.RGBA
	Target  raster.Plotter // nil draws into the frame itself, after the columns
}

// Options holds the projection and shading settings of a Renderer.
type Options struct {
	FOV         float64
	PlaneHeight float64
	MaxRange    float64

	// Clear paints the upper half Ceiling and the lower half Floor before
	// drawing columns. Without it the caller's background is left as is.
	Clear   bool
	Ceiling color.RGBA
	Floor   color.RGBA

	ShadeSides    bool    // darken horizontal faces
	FogDistance   float64 // distance at which fog reaches its maximum; 0 disables
	BrightnessMin float64 // lowest brightness fog may reach, in [0,1]

	Debug DebugOptions
}

// DefaultOptions returns the fixed projection constants with shading off.
func DefaultOptions() Options {
	return Options{
		FOV:         DefaultFOV,
		PlaneHeight: DefaultPlaneHeight,
		MaxRange:    DefaultMaxRange,
		Debug: DebugOptions{
			Scale: 0.125,
			Color: palette.RGBA(255, 255, 0, 255),
		},
	}
}

// Column is the projection of one screen column.
type Column struct {
	Index     int
	Angle     float64     // ray angle
	Hit       raycast.Hit // raw cast result, distance along the ray
	Corrected float64     // perpendicular distance; +Inf without a hit
	Height    float64     // projected wall height in pixels; 0 without a hit
}

// Renderer turns a viewer pose into wall columns on a framebuffer.
type Renderer struct {
	grid raycast.WorldGrid
	opts Options
}

// NewRenderer creates a renderer over grid. Zero-valued projection fields in
// opts fall back to the defaults.
func NewRenderer(grid raycast.WorldGrid, opts Options) *Renderer {
	def := DefaultOptions()
	if opts.FOV <= 0 {
		opts.FOV = def.FOV
	}
	if opts.PlaneHeight <= 0 {
		opts.PlaneHeight = def.PlaneHeight
	}
	if opts.MaxRange <= 0 {
		opts.MaxRange = def.MaxRange
	}
	if opts.Debug.Scale <= 0 {
		opts.Debug.Scale = def.Debug.Scale
	}
	return &Renderer{grid: grid, opts: opts}
}

// Options returns the renderer's effective settings.
func (r *Renderer) Options() Options {
	return r.opts
}

// SetDebug switches the ray overlay on or off.
func (r *Renderer) SetDebug(enabled bool) {
	r.opts.Debug.Enabled = enabled
}

// PlaneDistance is the viewer-to-plane distance, in pixels, at which the
// field of view exactly spans the plane width for a width x height frame.
//
// In plane units it is (planeWidth/2)/tan(fov/2) with planeWidth =
// planeHeight*width/height; the result is scaled by height/planeHeight so
// projected heights come out in pixels.
func (r *Renderer) PlaneDistance(width, height int) float64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	planeWidth := r.opts.PlaneHeight * float64(width) / float64(height)
	planeDistance := (planeWidth / 2) / math.Tan(r.opts.FOV/2)
	return planeDistance * float64(height) / r.opts.PlaneHeight
}

// ColumnHeight projects a wall at the given perpendicular distance. A
// non-positive distance (viewer inside a wall) yields maxHeight, and results
// never exceed it.
func ColumnHeight(corrected, planeDistance, maxHeight float64) float64 {
	if corrected <= 0 {
		return maxHeight
	}
	h := WallHeight / corrected * planeDistance
	if h > maxHeight {
		return maxHeight
	}
	return h
}

// Project casts one ray per column of a width x height frame.
func (r *Renderer) Project(width, height int, pos raycast.Position, dir float64) []Column {
	if width <= 0 || height <= 0 {
		return nil
	}
	planeDistance := r.PlaneDistance(width, height)
	step := r.opts.FOV / float64(width)
	start := dir - r.opts.FOV/2

	cols := make([]Column, width)
	for c := range cols {
		angle := start + float64(c)*step
		hit := raycast.Cast(pos, angle, r.grid, r.opts.MaxRange)
		col := Column{Index: c, Angle: angle, Hit: hit, Corrected: math.Inf(1)}
		if hit.Ok() {
			col.Corrected = hit.Distance * math.Cos(angle-dir)
			col.Height = ColumnHeight(col.Corrected, planeDistance, float64(height))
		}
		cols[c] = col
	}
	return cols
}

// Render draws the view from pos facing dir into fb.
func (r *Renderer) Render(fb *framebuffer.Framebuffer, pos raycast.Position, dir float64) {
	if fb == nil || fb.Width <= 0 || fb.Height <= 0 {
		return
	}
	if r.opts.Clear {
		r.clear(fb)
	}

	cols := r.Project(fb.Width, fb.Height, pos, dir)
	for _, col := range cols {
		r.drawColumn(fb, col)
	}

	if r.opts.Debug.Enabled {
		r.drawRays(fb, cols)
	}
}

func (r *Renderer) clear(fb *framebuffer.Framebuffer) {
	fb.Clear(r.opts.Floor)
	half := fb.Height / 2
	for y := 0; y < half; y++ {
		raster.DrawLine(fb, raster.Point{X: 0, Y: y}, raster.Point{X: fb.Width - 1, Y: y}, r.opts.Ceiling)
	}
}

// drawColumn draws a vertically centred strip for one column.
func (r *Renderer) drawColumn(fb *framebuffer.Framebuffer, col Column) {
	if !col.Hit.Ok() {
		return
	}
	h := mathutil.IntClamp(int(math.Round(col.Height)), 0, fb.Height)
	if h == 0 {
		return
	}
	top := (fb.Height - h) / 2
	bottom := top + h - 1
	raster.DrawLine(fb,
		raster.Point{X: col.Index, Y: top},
		raster.Point{X: col.Index, Y: bottom},
		r.wallColor(col))
}

// wallColor derives the shade of the struck wall for a column.
func (r *Renderer) wallColor(col Column) color.RGBA {
	c := col.Hit.Wall.Color
	amount := 0.0
	if r.opts.ShadeSides && col.Hit.Side == raycast.SideHorizontal {
		amount = sideShade
	}
	if r.opts.FogDistance > 0 {
		fog := col.Corrected / r.opts.FogDistance
		if maxFog := 1 - r.opts.BrightnessMin; fog > maxFog {
			fog = maxFog
		}
		amount = 1 - (1-amount)*(1-fog)
	}
	return palette.Shade(c, amount)
}

// drawRays draws each cast ray from the debug anchor, scaled down. Rays
// without a hit are drawn to the search range.
func (r *Renderer) drawRays(fb *framebuffer.Framebuffer, cols []Column) {
	var target raster.Plotter = fb
	if r.opts.Debug.Target != nil {
		target = r.opts.Debug.Target
	}
	for _, col := range cols {
		dist := col.Hit.Distance
		if !col.Hit.Ok() {
			dist = r.opts.MaxRange
		}
		raster.DrawLineAngle(target, r.opts.Debug.Anchor, col.Angle, dist*r.opts.Debug.Scale, r.opts.Debug.Color)
	}
}
