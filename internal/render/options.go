package render

import (
	"raycaster/internal/config"
	"raycaster/internal/raster"
)

// OptionsFromConfig builds renderer options from a validated config.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	opts.FOV = cfg.GetCameraFOV()
	opts.PlaneHeight = cfg.Camera.PlaneHeight
	opts.MaxRange = cfg.GetViewDistance()

	opts.Clear = true
	opts.Ceiling = cfg.GetSkyColor()
	opts.Floor = cfg.GetFloorColor()
	opts.ShadeSides = cfg.Graphics.ShadeSides
	opts.FogDistance = cfg.Graphics.FogDistance
	opts.BrightnessMin = cfg.Graphics.BrightnessMin

	opts.Debug = DebugOptions{
		Enabled: cfg.Debug.Rays,
		Anchor:  raster.Point{X: cfg.Debug.AnchorX, Y: cfg.Debug.AnchorY},
		Scale:   cfg.Debug.RayScale,
		Color:   cfg.GetRayColor(),
	}
	return opts
}
