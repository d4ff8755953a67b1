package game

import (
	"errors"
	"log"

	"raycaster/internal/camera"
	"raycaster/internal/collision"
	"raycaster/internal/config"
	"raycaster/internal/framebuffer"
	"raycaster/internal/game/keytracker"
	"raycaster/internal/monitoring"
	"raycaster/internal/render"
	"raycaster/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoStart is returned when the map has no open tile to start on.
var ErrNoStart = errors.New("map has no open tile to start on")

// perfCheckInterval is how many ticks pass between frame rate checks.
const perfCheckInterval = 600

// minFPS is the frame rate below which a warning is logged.
const minFPS = 30

// Game hosts the raycaster in an ebiten window. It implements ebiten.Game.
type Game struct {
	config   *config.Config
	grid     *world.Grid
	camera   *camera.Camera
	renderer *render.Renderer
	fb       *framebuffer.Framebuffer
	perf     *monitoring.PerformanceMonitor

	showHUD    bool
	frameTimer *monitoring.FrameTimer
	ticks      int

	keys *keytracker.Tracker
}

// NewGame creates a game over grid, starting at the map's start tile.
func NewGame(cfg *config.Config, grid *world.Grid) (*Game, error) {
	start, ok := grid.StartPosition()
	if !ok {
		return nil, ErrNoStart
	}
	cs := collision.NewCollisionSystem(grid)

	return &Game{
		config:   cfg,
		grid:     grid,
		camera:   camera.New(start, cfg.Camera.StartAngle, cs, cfg.Movement.Radius),
		renderer: render.NewRenderer(grid, render.OptionsFromConfig(cfg)),
		fb:       framebuffer.New(cfg.GetScreenWidth(), cfg.GetScreenHeight()),
		perf:     monitoring.NewPerformanceMonitor(),
		showHUD:  cfg.Debug.ShowHUD,
		keys:     keytracker.New(),
	}, nil
}

// Camera returns the viewer camera.
func (g *Game) Camera() *camera.Camera {
	return g.camera
}

// Update advances one tick: toggles, movement and frame timing.
func (g *Game) Update() error {
	if g.frameTimer != nil {
		g.frameTimer.EndFrame()
	}
	g.frameTimer = g.perf.StartFrame()

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.keys.IsKeyJustPressed(ebiten.KeyF1) {
		g.toggleDebugRays()
	}
	if g.keys.IsKeyJustPressed(ebiten.KeyF3) {
		g.showHUD = !g.showHUD
	}
	g.applyInput(readInput())

	g.ticks++
	if g.ticks%perfCheckInterval == 0 {
		for _, alert := range g.perf.CheckPerformanceAlerts(minFPS) {
			log.Printf("[Perf] %s: %.1f (target %.0f)", alert.Message, alert.Value, alert.Threshold)
		}
	}
	return nil
}

func (g *Game) toggleDebugRays() {
	enabled := !g.renderer.Options().Debug.Enabled
	g.renderer.SetDebug(enabled)
	log.Printf("[Game] Debug rays: %v", enabled)
}

// renderFrame draws the current view into the framebuffer.
func (g *Game) renderFrame() {
	rt := g.perf.StartRender()
	g.renderer.Render(g.fb, g.camera.Pos, g.camera.Angle)
	rt.EndRender()
}

// Draw presents the framebuffer on the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderFrame()
	screen.WritePixels(g.fb.Pix)
	if g.showHUD {
		g.drawHUD(screen)
	}
}

// Layout fixes the logical screen to the framebuffer size; ebiten scales it
// to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width, g.fb.Height
}
