// Command termview renders the raycaster into a terminal. Each character
// cell shows two framebuffer rows as an upper half block, foreground for the
// top pixel and background for the bottom one.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"time"

	"raycaster/internal/camera"
	"raycaster/internal/collision"
	"raycaster/internal/config"
	"raycaster/internal/framebuffer"
	"raycaster/internal/render"
	"raycaster/internal/world"

	"github.com/gdamore/tcell/v2"
)

const (
	tick      = 33 * time.Millisecond
	halfBlock = '▀'
)

// action is what a key press asks the viewer to do.
type action int

const (
	actionNone action = iota
	actionQuit
	actionForward
	actionBack
	actionTurnLeft
	actionTurnRight
	actionStrafeLeft
	actionStrafeRight
)

type viewer struct {
	screen   tcell.Screen
	cfg      *config.Config
	camera   *camera.Camera
	renderer *render.Renderer
	fb       *framebuffer.Framebuffer
}

func main() {
	configPath := flag.String("config", "config.yaml", "configuration file")
	tilesPath := flag.String("tiles", "", "tile palette file (overrides config)")
	mapPath := flag.String("map", "", "map file (overrides config)")
	flag.Parse()

	cfg, err := config.LoadConfigOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *tilesPath != "" {
		cfg.World.TilesFile = *tilesPath
	}
	if *mapPath != "" {
		cfg.World.MapFile = *mapPath
	}

	grid, err := world.LoadWorldFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load world: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	v, err := newViewer(screen, cfg, grid)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	v.run()
}

func newViewer(screen tcell.Screen, cfg *config.Config, grid *world.Grid) (*viewer, error) {
	start, ok := grid.StartPosition()
	if !ok {
		return nil, fmt.Errorf("map has no open tile to start on")
	}

	// The overlay anchor is in window pixels and has no place on a terminal.
	opts := render.OptionsFromConfig(cfg)
	opts.Debug.Enabled = false

	screen.HideCursor()
	v := &viewer{
		screen:   screen,
		cfg:      cfg,
		camera:   camera.New(start, cfg.Camera.StartAngle, collision.NewCollisionSystem(grid), cfg.Movement.Radius),
		renderer: render.NewRenderer(grid, opts),
	}
	v.resize()
	return v, nil
}

// resize matches the framebuffer to the terminal: one column per cell and
// two rows per cell.
func (v *viewer) resize() {
	w, h := v.screen.Size()
	v.fb = framebuffer.New(w, 2*h)
	v.screen.Clear()
}

func (v *viewer) run() {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			v.draw()
		}
	}
}

// handleEvent applies one terminal event; it returns false to quit.
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a := keyAction(ev.Key(), ev.Rune())
		if a == actionQuit {
			return false
		}
		v.apply(a)
	case *tcell.EventResize:
		v.resize()
		v.screen.Sync()
	}
	return true
}

func keyAction(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyUp:
		return actionForward
	case tcell.KeyDown:
		return actionBack
	case tcell.KeyLeft:
		return actionTurnLeft
	case tcell.KeyRight:
		return actionTurnRight
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return actionForward
		case 's', 'S':
			return actionBack
		case 'a', 'A':
			return actionTurnLeft
		case 'd', 'D':
			return actionTurnRight
		case 'q', 'Q':
			return actionStrafeLeft
		case 'e', 'E':
			return actionStrafeRight
		case 'x', 'X':
			return actionQuit
		}
	}
	return actionNone
}

// Terminals repeat keys rather than report them held, so one press moves a
// few ticks' worth.
const keyRepeatSteps = 4

func (v *viewer) apply(a action) {
	move := v.cfg.GetMoveSpeed() * keyRepeatSteps
	rot := v.cfg.GetRotSpeed() * keyRepeatSteps

	switch a {
	case actionForward:
		v.camera.MoveForward(move)
	case actionBack:
		v.camera.MoveForward(-move)
	case actionTurnLeft:
		v.camera.Rotate(-rot)
	case actionTurnRight:
		v.camera.Rotate(rot)
	case actionStrafeLeft:
		v.camera.Strafe(-move)
	case actionStrafeRight:
		v.camera.Strafe(move)
	}
}

func (v *viewer) draw() {
	v.renderer.Render(v.fb, v.camera.Pos, v.camera.Angle)
	present(v.screen, v.fb)
	v.screen.Show()
}

// present copies fb onto screen, two pixel rows per cell.
func present(screen tcell.Screen, fb *framebuffer.Framebuffer) {
	for row := 0; 2*row < fb.Height; row++ {
		for x := 0; x < fb.Width; x++ {
			top := fb.At(x, 2*row)
			bottom := fb.At(x, 2*row+1)
			style := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
			screen.SetContent(x, row, halfBlock, nil, style)
		}
	}
}

func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
