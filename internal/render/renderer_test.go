package render

import (
	"image/color"
	"math"
	"testing"

	"raycaster/internal/framebuffer"
	"raycaster/internal/palette"
	"raycaster/internal/raster"
	"raycaster/internal/raycast"
)

// mapGrid implements raycast.WorldGrid for testing
type mapGrid map[[2]int]raycast.Wall

func (g mapGrid) WallAt(tileX, tileY int) (raycast.Wall, bool) {
	w, ok := g[[2]int{tileX, tileY}]
	return w, ok
}

var brick = raycast.Wall{ID: 1, Color: palette.MustParseHex("#b04020")}

// flatWall builds a single wall column at tile x=5, long enough to fill the view.
func flatWall() mapGrid {
	g := mapGrid{}
	for y := -40; y <= 40; y++ {
		g[[2]int{5, y}] = brick
	}
	return g
}

func TestProject_FisheyeFlattening(t *testing.T) {
	r := NewRenderer(flatWall(), DefaultOptions())
	cols := r.Project(160, 100, raycast.Position{X: 32, Y: 32}, 0)
	if len(cols) != 160 {
		t.Fatalf("expected 160 columns, got %d", len(cols))
	}

	minRaw, maxRaw := math.Inf(1), 0.0
	for _, col := range cols {
		if !col.Hit.Ok() {
			t.Fatalf("column %d: expected a hit", col.Index)
		}
		if math.Abs(col.Corrected-288) > 1e-6 {
			t.Errorf("column %d: corrected distance %f, want 288", col.Index, col.Corrected)
		}
		minRaw = math.Min(minRaw, col.Hit.Distance)
		maxRaw = math.Max(maxRaw, col.Hit.Distance)
	}
	if maxRaw-minRaw < 1 {
		t.Errorf("raw distances should bow across the view, spread %f", maxRaw-minRaw)
	}
}

func TestProject_FisheyeFlatteningRotated(t *testing.T) {
	// Same wall seen from the side of a box, facing south at an unnormalized angle.
	g := mapGrid{}
	for x := -40; x <= 40; x++ {
		g[[2]int{x, 3}] = brick
	}
	r := NewRenderer(g, DefaultOptions())
	cols := r.Project(64, 48, raycast.Position{X: 10, Y: 40}, math.Pi/2+4*math.Pi)
	for _, col := range cols {
		if math.Abs(col.Corrected-(192-40)) > 1e-6 {
			t.Fatalf("column %d: corrected %f, want 152", col.Index, col.Corrected)
		}
	}
}

func TestProject_ColumnAngles(t *testing.T) {
	r := NewRenderer(flatWall(), DefaultOptions())
	dir := 0.3
	cols := r.Project(10, 10, raycast.Position{X: 32, Y: 32}, dir)
	for c, col := range cols {
		want := dir - DefaultFOV/2 + float64(c)*(DefaultFOV/10)
		if math.Abs(col.Angle-want) > 1e-12 {
			t.Errorf("column %d: angle %f, want %f", c, col.Angle, want)
		}
	}
}

func TestColumnHeight_Monotonic(t *testing.T) {
	pd := NewRenderer(mapGrid{}, DefaultOptions()).PlaneDistance(320, 200)
	prev := math.Inf(1)
	for d := 40.0; d < 5000; d += 7.5 {
		h := ColumnHeight(d, pd, math.Inf(1))
		if !(h < prev) {
			t.Fatalf("height %f at distance %f is not below %f", h, d, prev)
		}
		prev = h
	}
}

func TestColumnHeight_ZeroAndClamp(t *testing.T) {
	if got := ColumnHeight(0, 300, 120); got != 120 {
		t.Errorf("zero distance should give max height, got %f", got)
	}
	if got := ColumnHeight(0.001, 300, 120); got != 120 {
		t.Errorf("tiny distance should clamp to max height, got %f", got)
	}
	if got := ColumnHeight(64, 100, 1000); math.Abs(got-100) > 1e-12 {
		t.Errorf("a wall one tile away should be planeDistance tall, got %f", got)
	}
}

func TestPlaneDistance(t *testing.T) {
	r := NewRenderer(mapGrid{}, DefaultOptions())
	want := 100 / math.Tan(0.5)
	if got := r.PlaneDistance(200, 200); math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %f, got %f", want, got)
	}
	// Doubling the frame doubles the pixel distance.
	if got := r.PlaneDistance(400, 400); math.Abs(got-2*want) > 1e-9 {
		t.Errorf("expected %f, got %f", 2*want, got)
	}
	if r.PlaneDistance(0, 10) != 0 {
		t.Errorf("degenerate frame should give 0")
	}
}

func TestRender_CentredColumn(t *testing.T) {
	r := NewRenderer(flatWall(), DefaultOptions())
	fb := framebuffer.New(200, 200)
	r.Render(fb, raycast.Position{X: 32, Y: 32}, 0)

	h := int(math.Round(ColumnHeight(288, r.PlaneDistance(200, 200), 200)))
	top := (200 - h) / 2
	bottom := top + h - 1
	for _, x := range []int{0, 100, 199} {
		for y := 0; y < 200; y++ {
			lit := fb.At(x, y) == brick.Color
			if want := y >= top && y <= bottom; lit != want {
				t.Fatalf("column %d row %d: lit=%v, want %v (top %d bottom %d)", x, y, lit, want, top, bottom)
			}
		}
	}
}

func TestRender_NoHitLeavesBackground(t *testing.T) {
	r := NewRenderer(mapGrid{}, DefaultOptions())
	fb := framebuffer.New(32, 20)
	bg := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	fb.Clear(bg)
	r.Render(fb, raycast.Position{X: 0, Y: 0}, 1.0)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.At(x, y) != bg {
				t.Fatalf("pixel (%d,%d) changed without any wall", x, y)
			}
		}
	}
}

func TestRender_InsideWallFillsColumns(t *testing.T) {
	g := mapGrid{{0, 0}: brick}
	r := NewRenderer(g, DefaultOptions())
	fb := framebuffer.New(8, 6)
	r.Render(fb, raycast.Position{X: 32, Y: 32}, 0)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.At(x, y) != brick.Color {
				t.Fatalf("pixel (%d,%d) should be wall when embedded", x, y)
			}
		}
	}
}

func TestRender_Clear(t *testing.T) {
	opts := DefaultOptions()
	opts.Clear = true
	opts.Ceiling = palette.MustParseHex("#87ceeb")
	opts.Floor = palette.MustParseHex("#3c783c")
	r := NewRenderer(mapGrid{}, opts)
	fb := framebuffer.New(10, 10)
	r.Render(fb, raycast.Position{}, 0)
	if fb.At(3, 0) != opts.Ceiling || fb.At(3, 4) != opts.Ceiling {
		t.Errorf("upper half should be ceiling")
	}
	if fb.At(3, 5) != opts.Floor || fb.At(3, 9) != opts.Floor {
		t.Errorf("lower half should be floor")
	}
}

func TestRender_ShadeSides(t *testing.T) {
	g := mapGrid{}
	for x := -40; x <= 40; x++ {
		g[[2]int{x, 3}] = brick
	}
	opts := DefaultOptions()
	opts.ShadeSides = true
	r := NewRenderer(g, opts)
	fb := framebuffer.New(20, 20)
	r.Render(fb, raycast.Position{X: 10, Y: 40}, math.Pi/2)
	got := fb.At(10, 10)
	if got == brick.Color || got.R >= brick.Color.R {
		t.Errorf("horizontal face should be darker than %v, got %v", brick.Color, got)
	}
}

func TestRender_Fog(t *testing.T) {
	opts := DefaultOptions()
	opts.FogDistance = 576
	opts.BrightnessMin = 0.2
	r := NewRenderer(flatWall(), opts)
	fb := framebuffer.New(20, 20)
	r.Render(fb, raycast.Position{X: 32, Y: 32}, 0)
	want := palette.Shade(brick.Color, 0.5)
	if got := fb.At(10, 10); got != want {
		t.Errorf("expected half-fogged %v, got %v", want, got)
	}
}

func TestRender_DebugOverlayIsolated(t *testing.T) {
	plain := framebuffer.New(64, 48)
	NewRenderer(flatWall(), DefaultOptions()).Render(plain, raycast.Position{X: 32, Y: 32}, 0.1)

	overlay := framebuffer.New(64, 48)
	opts := DefaultOptions()
	opts.Debug.Enabled = true
	opts.Debug.Anchor = raster.Point{X: 4, Y: 24}
	opts.Debug.Target = overlay
	withDebug := framebuffer.New(64, 48)
	NewRenderer(flatWall(), opts).Render(withDebug, raycast.Position{X: 32, Y: 32}, 0.1)

	for i := range plain.Pix {
		if plain.Pix[i] != withDebug.Pix[i] {
			t.Fatalf("debug overlay changed the column output at byte %d", i)
		}
	}
	if overlay.At(4, 24) != opts.Debug.Color {
		t.Errorf("rays should start at the anchor")
	}
}

func TestRender_DebugOverlayInFrame(t *testing.T) {
	opts := DefaultOptions()
	opts.Debug.Enabled = true
	opts.Debug.Anchor = raster.Point{X: 1, Y: 1}
	r := NewRenderer(mapGrid{}, opts)
	fb := framebuffer.New(16, 16)
	r.Render(fb, raycast.Position{}, 0)
	if fb.At(1, 1) != opts.Debug.Color {
		t.Errorf("overlay should draw into the frame when no target is set")
	}
}

func TestRender_Reproducible(t *testing.T) {
	r := NewRenderer(flatWall(), DefaultOptions())
	a, b := framebuffer.New(50, 30), framebuffer.New(50, 30)
	r.Render(a, raycast.Position{X: 20, Y: 50}, -0.4)
	r.Render(b, raycast.Position{X: 20, Y: 50}, -0.4)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("renders differ at byte %d", i)
		}
	}
}

func TestNewRenderer_Defaults(t *testing.T) {
	r := NewRenderer(mapGrid{}, Options{})
	o := r.Options()
	if o.FOV != DefaultFOV || o.PlaneHeight != DefaultPlaneHeight || o.MaxRange != DefaultMaxRange {
		t.Errorf("zero options should fall back to defaults, got %+v", o)
	}
	r.SetDebug(true)
	if !r.Options().Debug.Enabled {
		t.Errorf("SetDebug should enable the overlay")
	}
}
