package render

import (
	"testing"

	"raycaster/internal/config"
	"raycaster/internal/palette"
	"raycaster/internal/raster"
)

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.FieldOfView = 1.2
	cfg.Debug.Rays = true
	cfg.Debug.AnchorX, cfg.Debug.AnchorY = 10, 20

	opts := OptionsFromConfig(cfg)
	if opts.FOV != 1.2 || opts.PlaneHeight != 200 || opts.MaxRange != cfg.Camera.ViewDistance {
		t.Errorf("projection settings not copied: %+v", opts)
	}
	if !opts.Clear || opts.Ceiling != palette.MustParseHex("#383838") || opts.Floor != palette.MustParseHex("#707070") {
		t.Errorf("background not copied: %+v", opts)
	}
	if !opts.ShadeSides || opts.FogDistance != 1024 || opts.BrightnessMin != 0.25 {
		t.Errorf("shading not copied: %+v", opts)
	}
	if !opts.Debug.Enabled || opts.Debug.Anchor != (raster.Point{X: 10, Y: 20}) || opts.Debug.Color != palette.RGBA(255, 255, 0, 255) {
		t.Errorf("debug overlay not copied: %+v", opts.Debug)
	}
}
