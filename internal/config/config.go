package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"os"

	"raycaster/internal/palette"

	"gopkg.in/yaml.v3"
)

// Config holds all viewer configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	World    WorldConfig    `yaml:"world"`
	Camera   CameraConfig   `yaml:"camera"`
	Movement MovementConfig `yaml:"movement"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Debug    DebugConfig    `yaml:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`  // framebuffer width in pixels
	ScreenHeight int    `yaml:"screen_height"` // framebuffer height in pixels
	WindowScale  int    `yaml:"window_scale"`  // window is the framebuffer scaled by this
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type WorldConfig struct {
	TileSize  int    `yaml:"tile_size"`
	MapFile   string `yaml:"map_file"`
	TilesFile string `yaml:"tiles_file"`
}

type CameraConfig struct {
	FieldOfView  float64 `yaml:"field_of_view"` // radians
	PlaneHeight  float64 `yaml:"plane_height"`
	ViewDistance float64 `yaml:"view_distance"` // ray search range in world units
	StartAngle   float64 `yaml:"start_angle"`
}

type MovementConfig struct {
	MoveSpeed     float64 `yaml:"move_speed"`     // world units per tick
	RotationSpeed float64 `yaml:"rotation_speed"` // radians per tick
	Radius        float64 `yaml:"radius"`         // collision radius
}

type GraphicsConfig struct {
	SkyColor      string  `yaml:"sky_color"`
	FloorColor    string  `yaml:"floor_color"`
	ShadeSides    bool    `yaml:"shade_sides"`
	FogDistance   float64 `yaml:"fog_distance"`
	BrightnessMin float64 `yaml:"brightness_min"`
}

type DebugConfig struct {
	Rays     bool    `yaml:"rays"`
	RayScale float64 `yaml:"ray_scale"`
	RayColor string  `yaml:"ray_color"`
	AnchorX  int     `yaml:"anchor_x"`
	AnchorY  int     `yaml:"anchor_y"`
	ShowHUD  bool    `yaml:"show_hud"`
}

// TileConfig is the layout of tiles.yaml
type TileConfig struct {
	TileData map[string]TileData `yaml:"tiles"`
}

type TileData struct {
	Name   string `yaml:"name"`
	Letter string `yaml:"letter"`
	Solid  bool   `yaml:"solid"`
	Color  string `yaml:"color"`
}

var ErrInvalidConfig = errors.New("invalid config")

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  320,
			ScreenHeight: 200,
			WindowScale:  3,
			WindowTitle:  "raycaster",
		},
		World: WorldConfig{
			TileSize:  64,
			MapFile:   "assets/level.map",
			TilesFile: "assets/tiles.yaml",
		},
		Camera: CameraConfig{
			FieldOfView:  1.0,
			PlaneHeight:  200,
			ViewDistance: 64 * 64,
		},
		Movement: MovementConfig{
			MoveSpeed:     3,
			RotationSpeed: 0.04,
			Radius:        12,
		},
		Graphics: GraphicsConfig{
			SkyColor:      "#383838",
			FloorColor:    "#707070",
			ShadeSides:    true,
			FogDistance:   1024,
			BrightnessMin: 0.25,
		},
		Debug: DebugConfig{
			RayScale: 0.125,
			RayColor: "#ffff00",
			AnchorX:  160,
			AnchorY:  190,
			ShowHUD:  true,
		},
	}
}

// LoadConfig loads the configuration from a YAML file. Keys the file omits
// keep their Default() values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// LoadConfigOrDefault is LoadConfig, except that a missing file yields
// Default().
func LoadConfigOrDefault(filename string) (*Config, error) {
	config, err := LoadConfig(filename)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Config] %s not found, using built-in defaults", filename)
		return Default(), nil
	}
	return config, err
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks ranges and color strings.
func (c *Config) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.WindowScale <= 0 {
		return fmt.Errorf("%w: window_scale must be positive", ErrInvalidConfig)
	}
	if c.World.TileSize != 64 {
		return fmt.Errorf("%w: tile_size must be 64, got %d", ErrInvalidConfig, c.World.TileSize)
	}
	if c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 3.1 {
		return fmt.Errorf("%w: field_of_view %.3f out of range", ErrInvalidConfig, c.Camera.FieldOfView)
	}
	if c.Camera.PlaneHeight <= 0 {
		return fmt.Errorf("%w: plane_height must be positive", ErrInvalidConfig)
	}
	if c.Camera.ViewDistance <= 0 {
		return fmt.Errorf("%w: view_distance must be positive", ErrInvalidConfig)
	}
	if c.Graphics.BrightnessMin < 0 || c.Graphics.BrightnessMin > 1 {
		return fmt.Errorf("%w: brightness_min must be within [0,1]", ErrInvalidConfig)
	}
	for name, value := range map[string]string{
		"sky_color":   c.Graphics.SkyColor,
		"floor_color": c.Graphics.FloorColor,
		"ray_color":   c.Debug.RayColor,
	} {
		if _, err := palette.ParseHex(value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, name, err)
		}
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetWindowSize() (int, int) {
	return c.Display.ScreenWidth * c.Display.WindowScale, c.Display.ScreenHeight * c.Display.WindowScale
}

func (c *Config) GetTileSize() float64 {
	return float64(c.World.TileSize)
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.MoveSpeed
}

func (c *Config) GetRotSpeed() float64 {
	return c.Movement.RotationSpeed
}

func (c *Config) GetCameraFOV() float64 {
	return c.Camera.FieldOfView
}

func (c *Config) GetViewDistance() float64 {
	return c.Camera.ViewDistance
}

// Color accessors assume Validate has passed.
func (c *Config) GetSkyColor() color.RGBA {
	return palette.MustParseHex(c.Graphics.SkyColor)
}

func (c *Config) GetFloorColor() color.RGBA {
	return palette.MustParseHex(c.Graphics.FloorColor)
}

func (c *Config) GetRayColor() color.RGBA {
	return palette.MustParseHex(c.Debug.RayColor)
}
