// Command snapshot renders a single frame without a window and writes it as
// a BMP image.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"raycaster/internal/config"
	"raycaster/internal/framebuffer"
	"raycaster/internal/raycast"
	"raycaster/internal/render"
	"raycaster/internal/world"

	"golang.org/x/image/bmp"
)

func main() {
	configPath := flag.String("config", "config.yaml", "configuration file")
	tilesPath := flag.String("tiles", "", "tile palette file (overrides config)")
	mapPath := flag.String("map", "", "map file (overrides config)")
	x := flag.Float64("x", math.NaN(), "viewer x in world units (default: map start)")
	y := flag.Float64("y", math.NaN(), "viewer y in world units (default: map start)")
	angle := flag.Float64("angle", math.NaN(), "view direction in radians (default: config start_angle)")
	rays := flag.Bool("rays", false, "draw the debug ray overlay")
	out := flag.String("out", "frame.bmp", "output file")
	flag.Parse()

	cfg, err := config.LoadConfigOrDefault(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *tilesPath != "" {
		cfg.World.TilesFile = *tilesPath
	}
	if *mapPath != "" {
		cfg.World.MapFile = *mapPath
	}

	grid, err := world.LoadWorldFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}

	pos, dir, err := viewpoint(grid, cfg, *x, *y, *angle)
	if err != nil {
		log.Fatal(err)
	}
	if grid.IsSolidAt(pos) {
		log.Printf("[Snapshot] Warning: (%.1f, %.1f) is inside a wall; every column will be full height", pos.X, pos.Y)
	}

	fb := renderFrame(cfg, grid, pos, dir, *rays)
	if err := writeBMP(*out, fb); err != nil {
		log.Fatal(err)
	}
	log.Printf("[Snapshot] Wrote %dx%d frame at (%.1f, %.1f) angle %.3f to %s", fb.Width, fb.Height, pos.X, pos.Y, dir, *out)
}

// viewpoint resolves the viewer pose; NaN inputs take the map start and the
// configured start angle.
func viewpoint(grid *world.Grid, cfg *config.Config, x, y, angle float64) (raycast.Position, float64, error) {
	pos, ok := grid.StartPosition()
	if !math.IsNaN(x) && !math.IsNaN(y) {
		pos, ok = raycast.Position{X: x, Y: y}, true
	}
	if !ok {
		return pos, 0, fmt.Errorf("map has no open tile and no -x/-y was given")
	}
	if math.IsNaN(angle) {
		angle = cfg.Camera.StartAngle
	}
	return pos, angle, nil
}

func renderFrame(cfg *config.Config, grid *world.Grid, pos raycast.Position, dir float64, rays bool) *framebuffer.Framebuffer {
	fb := framebuffer.New(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	opts := render.OptionsFromConfig(cfg)
	opts.Debug.Enabled = opts.Debug.Enabled || rays
	render.NewRenderer(grid, opts).Render(fb, pos, dir)
	return fb
}

func writeBMP(path string, fb *framebuffer.Framebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := bmp.Encode(f, fb.Image()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
